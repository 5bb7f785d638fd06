package cmd

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"ely.by/mapskins/internal/resolver"
	"ely.by/mapskins/internal/skins"
)

var errSkinNotFound = errors.New("none of the providers has a skin for the player")

var resolveCmd = &cobra.Command{
	Use:   "resolve <uuid>",
	Short: "Resolves the skin of a single player and saves it as a png file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid uuid %s: %w", args[0], err)
		}

		name, _ := cmd.Flags().GetString("name")
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = id.String() + ".png"
		}

		container, err := newContainer()
		if err != nil {
			return err
		}

		var ctx context.Context
		if err := container.Resolve(&ctx); err != nil {
			return err
		}

		var skinResolver *resolver.Resolver
		if err := container.Resolve(&skinResolver); err != nil {
			return err
		}

		skin := skinResolver.ResolveSkin(ctx, skins.NewIdentity(id, name))
		if skin == nil {
			return errSkinNotFound
		}

		file, err := os.Create(out)
		if err != nil {
			return err
		}
		defer file.Close()

		if err := png.Encode(file, skin); err != nil {
			return fmt.Errorf("unable to write the skin: %w", err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "The skin is saved to %s\n", out)

		return nil
	},
}

func init() {
	resolveCmd.Flags().String("name", "", "player's name, used by the offline mode and the name placeholders")
	resolveCmd.Flags().StringP("out", "o", "", "output file (<uuid>.png in the working dir by default)")
	RootCmd.AddCommand(resolveCmd)
}
