package cli

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/shelfkeeper/internal/config"
	"github.com/dmitrijs2005/shelfkeeper/internal/models"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newAddCmd(cfg *config.Config) *cobra.Command {
	var template string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := buildService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			c := models.Collection{
				ID:         uuid.NewString(),
				TemplateID: template,
				Name:       args[0],
				UpdatedAt:  models.Timestamp(time.Now()),
			}
			if err := svc.SaveCollection(cmd.Context(), &c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", c.Name, c.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&template, "template", "records", "collection template id")
	return cmd
}
