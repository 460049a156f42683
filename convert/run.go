package convert

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"fig2html/archive"
	"fig2html/config"
	"fig2html/content"
	"fig2html/css"
	"fig2html/figma"
	"fig2html/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = "output"
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")
	env.SaveJSON = cmd.Bool("save-json")
	env.Page, env.AllPages = int(cmd.Int("page")), cmd.Bool("all-pages")
	if env.Page != 0 && env.AllPages {
		return errors.New("--page and --all-pages are mutually exclusive")
	}
	if env.Page < 0 {
		return fmt.Errorf("page numbers start at 1, got %d", env.Page)
	}
	if t := cmd.String("token"); len(t) > 0 {
		env.Cfg.Figma.Token = config.SecretString(t)
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	if remoteSource(src) {
		return processRemote(ctx, src, dst, log)
	}

	if env.SaveJSON {
		log.Warn("Option --save-json only applies to remote sources, ignoring")
		env.SaveJSON = false
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	return process(ctx, src, dst, log)
}

// remoteSource decides whether the source argument names a document on the
// service rather than on disk. Links are unambiguous, for a bare key we
// check that nothing local matches first.
func remoteSource(src string) bool {
	if strings.Contains(src, "figma.com") {
		return true
	}
	if _, err := os.Stat(src); err == nil {
		return false
	}
	return !strings.ContainsAny(src, `/\`) && len(filepath.Ext(src)) == 0
}

// processRemote downloads a document snapshot and converts it.
func processRemote(ctx context.Context, src, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	key, err := figma.FileKeyFromArg(src)
	if err != nil {
		return err
	}
	env.FileKey = key

	client, err := figma.NewClient(string(env.Cfg.Figma.Token), log.Named("figma"), clientOptions(&env.Cfg.Figma)...)
	if err != nil {
		if errors.Is(err, figma.ErrAuthenticationRequired) {
			return fmt.Errorf("%w (pass --token or set FIGMA_API_TOKEN)", err)
		}
		return err
	}

	log.Info("Downloading document", zap.String("key", key))
	raw, _, err := client.File(ctx, key)
	if err != nil {
		return fmt.Errorf("unable to download document %s: %w", key, err)
	}

	return processDocument(ctx, bytes.NewReader(raw), key+".json", dst, false, log)
}

// clientOptions translates configuration into API client options.
func clientOptions(cfg *config.FigmaConfig) []figma.ClientOption {
	opts := make([]figma.ClientOption, 0, 2)
	if len(cfg.BaseURL) > 0 && cfg.BaseURL != figma.DefaultBaseURL {
		opts = append(opts, figma.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, figma.WithTimeout(time.Duration(cfg.Timeout)*time.Second))
	}
	return opts
}

// process handles the core conversion logic independently of CLI framework.
// It determines the input type (directory, archive, or single file) and
// processes accordingly.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := processDir(ctx, head, dst, log); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		archive, err := isArchiveFile(head)
		if err != nil {
			// checking format - but cannot open target file
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if archive {
			// we need to look inside to see if path makes sense
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := processArchive(ctx, head, tail, "", dst, log); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		design, enc, err := isDesignFile(head)
		if err != nil {
			// checking format - but cannot open target file
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if design && len(tail) == 0 {
			// we have a snapshot, it cannot have tail
			file, err := os.Open(head)
			if err != nil {
				return fmt.Errorf("unable to process file (%s): %w", head, err)
			}
			defer file.Close()
			if err := processDocument(ctx, selectReader(file, enc), filepath.Base(head), dst, false, log); err != nil {
				return fmt.Errorf("unable to process file (%s): %w", head, err)
			}
			break
		}
		return fmt.Errorf("input was not recognized as design document snapshot (%s)", head)
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

// processDir walks directory tree finding design document snapshots and
// processes them in natural name order. Individual failures do not stop the
// batch, they are aggregated into the returned error.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) error {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return err
	}

	sort.Slice(files, func(i, j int) bool { return natural.Less(files[i], files[j]) })

	count := 0
	var errs error
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}

		archive, err := isArchiveFile(path)
		if err != nil {
			// checking format - but cannot open target file
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if archive {
			if err := processArchive(ctx, path, "", filepath.Dir(strings.TrimPrefix(path, dir)), dst, log); err != nil {
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
				errs = multierr.Append(errs, err)
			}
			continue
		}

		design, enc, err := isDesignFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if !design {
			log.Debug("Skipping file, not recognized as design document or archive", zap.String("file", path))
			continue
		}

		count++

		file, err := os.Open(path)
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			errs = multierr.Append(errs, err)
			continue
		}

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		err = processDocument(ctx, selectReader(file, enc), src, dst, true, log)
		file.Close()
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}
	if count == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return errs
}

// processArchive walks all files inside archive, finds design document
// snapshots under "pathIn" and processes them. As with directories,
// individual failures are aggregated and do not stop the batch.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, log *zap.Logger) error {
	count := 0
	var errs error
	err := archive.Walk(path, pathIn, func(arch string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		design, enc, err := isDesignInArchive(f)
		if err != nil {
			log.Warn("Skipping file in archive",
				zap.String("archive", arch), zap.String("path", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		if !design {
			log.Debug("Skipping file, not recognized as design document",
				zap.String("archive", arch), zap.String("file", f.FileHeader.Name))
			return nil
		}

		count++

		r, err := f.Open()
		if err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", arch), zap.String("file", f.FileHeader.Name), zap.Error(err))
			errs = multierr.Append(errs, err)
			return nil
		}
		defer r.Close()

		if err := processDocument(ctx, selectReader(r, enc), filepath.Join(pathOut, f.FileHeader.Name), dst, true, log); err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", arch), zap.String("file", f.FileHeader.Name), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
		return nil
	})
	if err != nil {
		return multierr.Append(errs, err)
	}
	if count == 0 {
		log.Debug("Nothing to process", zap.String("archive", path))
	}
	return errs
}

// processDocument converts a single design document snapshot. "src" is part
// of the source path (always including file name) relative to the original
// path. When actual file was specified it will be just base file name
// without a path. When looking inside archive or directory it will be
// relative path inside archive or directory (including base file name).
// "dst" is the destination directory the output directory tree grows under.
func processDocument(ctx context.Context, r io.Reader, src, dst string, batch bool, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var refID, outDir string

	log.Info("Conversion starting", zap.String("from", src))
	defer func(start time.Time) {
		// NOTE: a malformed document should not be able to stop batch
		// processing, so panics are contained here.
		if r := recover(); r != nil {
			log.Error("Conversion ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outDir), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("conversion panic: %v", r)
		} else {
			log.Info("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outDir), zap.String("ref_id", refID))
		}
	}(time.Now())

	c, err := content.Prepare(ctx, r, src, log)
	if err != nil {
		return fmt.Errorf("unable to parse design document (%s): %w", src, err)
	}
	refID = c.RefID

	outDir = buildOutputDir(c, src, dst, batch, env)
	opts := Options{Constraints: env.Cfg.Document.Constraints}

	switch {
	case env.AllPages:
		pages := c.File.Pages()
		if len(pages) == 0 {
			return fmt.Errorf("document %q has no pages", c.File.Name)
		}
		for i, page := range pages {
			if err := ctx.Err(); err != nil {
				return err
			}
			markup, styles := ConvertPage(page, opts, log)
			pageDir := filepath.Join(outDir, pageDirName(i, page.Name))
			if err := writeDocument(pageDir, markup, styles, env, log); err != nil {
				return err
			}
		}
	case env.Page > 0:
		page, err := c.Page(env.Page - 1)
		if err != nil {
			return err
		}
		markup, styles := ConvertPage(page, opts, log)
		if err := writeDocument(outDir, markup, styles, env, log); err != nil {
			return err
		}
	default:
		markup, styles := Convert(c.File, opts, log)
		if err := writeDocument(outDir, markup, styles, env, log); err != nil {
			return err
		}
	}

	if env.SaveJSON {
		if err := os.WriteFile(filepath.Join(outDir, "figma_data.json"), c.Raw, 0644); err != nil {
			return fmt.Errorf("unable to save document snapshot: %w", err)
		}
	}

	// Store conversion result for debugging
	if env.Rpt != nil {
		env.Rpt.Store("result-"+refID, outDir)
	}

	return nil
}

// writeDocument puts the rendered page and its stylesheet into dir, creating
// it as needed. Existing output is only replaced when overwrite was
// requested.
func writeDocument(dir, markup, styles string, env *state.LocalEnv, log *zap.Logger) error {
	indexName := filepath.Join(dir, "index.html")
	if _, err := os.Stat(indexName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", indexName)
		}
		log.Warn("Overwriting existing file", zap.String("file", indexName))
	} else if !os.IsNotExist(err) {
		return err
	}

	if env.Rpt != nil {
		// debug runs read the emitted text back to catch malformed output early
		if rules, err := css.Parse([]byte(styles)); err != nil {
			log.Warn("Generated stylesheet does not reparse cleanly", zap.String("dir", dir), zap.Error(err))
		} else {
			log.Debug("Generated stylesheet", zap.String("dir", dir), zap.Int("rules", len(rules)))
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if err := os.WriteFile(indexName, []byte(markup), 0644); err != nil {
		return fmt.Errorf("unable to write page markup: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "styles.css"), []byte(styles), 0644); err != nil {
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	return nil
}
