package commands

import (
	"github.com/spf13/cobra"

	"github.com/saransh1220/flowart/internal/client/connectory"
	"github.com/saransh1220/flowart/internal/modules/directory/domain"
	"github.com/saransh1220/flowart/internal/modules/directory/infrastructure/fixtures"
)

type filterFlags struct {
	query      string
	medium     string
	experience string
	width      int
	local      bool
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "search name, username and bio")
	cmd.Flags().StringVar(&f.medium, "medium", domain.All, "Digital, Canvas, Sculpture or All")
	cmd.Flags().StringVar(&f.experience, "experience", domain.All, "Emerging, Mid-Career, Professional or All")
	cmd.Flags().IntVar(&f.width, "width", 1200, "viewport width used to pick the column count")
	cmd.Flags().BoolVar(&f.local, "local", false, "use the bundled artists instead of the server")
}

func (f *filterFlags) filter() domain.Filter {
	return domain.Filter{Query: f.query, Medium: f.medium, Experience: f.experience}
}

func searchCmd(a *app) *cobra.Command {
	var (
		flags filterFlags
		limit int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "List artists matching a filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := connectory.NewMasonry(flags.width, nil)

			if flags.local {
				view := connectory.NewLocalView(fixtures.Artists())
				view.SetFilter(flags.filter())
				results := view.Results()
				if limit > 0 && len(results) > limit {
					results = results[:limit]
				}
				renderView(a.out, m, connectory.ResolveStatus(false, nil, len(results)), results)
				return nil
			}

			artists, err := a.client.ListArtistsLimit(cmd.Context(), flags.filter(), limit)
			if err != nil {
				return err
			}
			renderView(a.out, m, connectory.ResolveStatus(false, nil, len(artists)), artists)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of artists (0 for the server default)")
	return cmd
}
