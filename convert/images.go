package convert

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"fig2html/config"
	"fig2html/figma"
	"fig2html/state"
)

// Images implements the images subcommand. It asks the service to render the
// requested nodes and prints the resulting links as JSON to stdout, the
// images themselves are not downloaded.
func Images(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("images")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no document source has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Mailformed command line, extra arguments", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	ids := splitNodeIDs(cmd.String("ids"))
	if len(ids) == 0 {
		return errors.New("no node ids have been specified, use --ids")
	}

	format := env.Cfg.Figma.Images.Format
	if f := cmd.String("format"); len(f) > 0 {
		var err error
		if format, err = config.ParseImageFormat(f); err != nil {
			return err
		}
	}
	scale := env.Cfg.Figma.Images.Scale
	if s := cmd.Float("scale"); s > 0 {
		scale = s
	}
	if t := cmd.String("token"); len(t) > 0 {
		env.Cfg.Figma.Token = config.SecretString(t)
	}

	key, err := figma.FileKeyFromArg(src)
	if err != nil {
		return err
	}

	client, err := figma.NewClient(string(env.Cfg.Figma.Token), log.Named("figma"), clientOptions(&env.Cfg.Figma)...)
	if err != nil {
		if errors.Is(err, figma.ErrAuthenticationRequired) {
			return fmt.Errorf("%w (pass --token or set FIGMA_API_TOKEN)", err)
		}
		return err
	}

	log.Info("Requesting image links",
		zap.String("key", key), zap.Strings("ids", ids), zap.Stringer("format", format), zap.Float64("scale", scale))
	defer func(start time.Time) {
		log.Info("Request completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	links, err := client.Images(ctx, key, ids, format.String(), scale)
	if err != nil {
		return fmt.Errorf("unable to get image links for %s: %w", key, err)
	}

	data, err := json.MarshalIndent(links, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to serialize image links: %w", err)
	}
	if _, err := os.Stdout.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("unable to write image links: %w", err)
	}
	return nil
}

// splitNodeIDs breaks a comma separated id list dropping empty entries.
func splitNodeIDs(s string) []string {
	parts := strings.Split(s, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); len(p) > 0 {
			ids = append(ids, p)
		}
	}
	return ids
}
