package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saransh1220/flowart/internal/client/connectory"
	"github.com/saransh1220/flowart/internal/modules/directory/domain"
	"github.com/saransh1220/flowart/internal/modules/directory/infrastructure/fixtures"
)

func facetsCmd(a *app) *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "facets",
		Short: "Show the selectable medium and experience values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var facets domain.Facets
			if local {
				facets = connectory.NewLocalView(fixtures.Artists()).Facets()
			} else {
				f, err := a.client.Facets(cmd.Context())
				if err != nil {
					return err
				}
				facets = *f
			}
			fmt.Fprintf(a.out, "Medium:     %s\n", strings.Join(facets.Mediums, ", "))
			fmt.Fprintf(a.out, "Experience: %s\n", strings.Join(facets.Experiences, ", "))
			return nil
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "use the bundled artists instead of the server")
	return cmd
}
