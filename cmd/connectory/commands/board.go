package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func boardCmd(a *app) *cobra.Command {
	var tag, postType string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Read the community board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			posts, err := a.client.CommunityPosts(cmd.Context(), tag, postType)
			if err != nil {
				return err
			}
			if len(posts) == 0 {
				fmt.Fprintln(a.out, "No posts match these filters.")
				return nil
			}
			for _, p := range posts {
				fmt.Fprintf(a.out, "[%s] %s\n", p.Type, p.Title)
				fmt.Fprintf(a.out, "  by %s on %s · %d likes · %d comments\n",
					p.Author, p.CreatedAt.Format("Jan 2, 2006"), p.Likes, p.Comments)
				if len(p.Tags) > 0 {
					fmt.Fprintf(a.out, "  #%s\n", strings.Join(p.Tags, " #"))
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&tag, "tag", "All", "only posts with this tag")
	cmd.Flags().StringVar(&postType, "type", "All", `"Open Call", "Project Update" or All`)

	cmd.AddCommand(boardTagsCmd(a), boardPostCmd(a))
	return cmd
}

func boardTagsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the tags in use on the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := a.client.CommunityTags(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, strings.Join(tags, ", "))
			return nil
		},
	}
}

func boardPostCmd(a *app) *cobra.Command {
	var (
		postType, title, content string
		tags                     []string
	)

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Publish a post as the signed-in artist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.restore(cmd.Context())
			if err != nil {
				return err
			}
			if !st.Authenticated {
				return errors.New("sign in first with `connectory login`")
			}
			post, err := a.client.CreatePost(cmd.Context(), postType, title, content, tags)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Posted %q\n", post.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&postType, "type", "Project Update", `"Open Call" or "Project Update"`)
	cmd.Flags().StringVar(&title, "title", "", "post title")
	cmd.Flags().StringVar(&content, "content", "", "post body")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "comma separated tags")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}
