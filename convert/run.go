package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cmod/color"
	"cmod/colormod"
	"cmod/config"
	"cmod/css"
	"cmod/state"
)

// Run implements "transform" subcommand - reads stylesheet, resolves every
// color-mod() expression in it and writes result out.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("transform")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}

	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	// command line overwrites configuration
	tc := env.Cfg.Transform
	if cmd.IsSet("unresolved") {
		tc.Unresolved = cmd.String("unresolved")
	}
	if cmd.IsSet("form") {
		form, err := config.ParseForm(cmd.String("form"))
		if err != nil {
			log.Warn("Unknown serialization form requested, keeping configured one", zap.Error(err))
		} else {
			tc.Form = form
		}
	}
	if cmd.IsSet("vars") {
		tc.VariablesPath = cmd.String("vars")
	}
	if cmd.IsSet("keep-vars") {
		tc.RemoveCustomProperties = !cmd.Bool("keep-vars")
	}

	env.Overwrite = cmd.Bool("overwrite")

	mode, err := colormod.ParseUnresolvedMode(tc.Unresolved)
	if err != nil {
		log.Warn("Unknown unresolved policy requested, switching to throw", zap.Error(err))
		mode = colormod.UnresolvedModeThrow
	}

	stringify := color.Color.StringLegacy
	if tc.Form == config.FormModern {
		stringify = color.Color.StringModern
	}

	var props colormod.Props
	if len(tc.VariablesPath) > 0 {
		if props, err = LoadProps(tc.VariablesPath, log); err != nil {
			return err
		}
		log.Debug("Loaded external custom properties", zap.String("file", tc.VariablesPath), zap.Int("count", len(props)))
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("form", tc.Form), zap.Stringer("unresolved", mode))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(src, dst, Options{
		Unresolved:             mode,
		Stringify:              stringify,
		TransformVars:          tc.TransformVariables,
		Props:                  props,
		RemoveCustomProperties: tc.RemoveCustomProperties,
	}, env.Overwrite, log)
}

// process handles the core transformation independently of CLI framework.
// Source and destination "-" stand for stdin and stdout.
func process(src, dst string, opts Options, overwrite bool, log *zap.Logger) error {
	var (
		data []byte
		err  error
	)
	if src == "-" {
		src = "STDIN"
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(src)
	}
	if err != nil {
		return fmt.Errorf("unable to read stylesheet from %q: %w", src, err)
	}

	sheet := css.NewParser(log).Parse(data, src)
	for _, w := range sheet.Warnings {
		log.Warn("Stylesheet parsing problem", zap.String("source", src), zap.String("problem", w))
	}

	p := NewProcessor(opts, log)
	if err := p.Stylesheet(sheet); err != nil {
		return fmt.Errorf("unable to transform stylesheet %q: %w", src, err)
	}
	for _, w := range p.Warnings() {
		log.Warn("Unresolved color-mod() left as is", zap.String("source", src), zap.String("problem", w.Error()))
	}

	out := os.Stdout
	if len(dst) > 0 && dst != "-" {
		if _, err := os.Stat(dst); err == nil && !overwrite {
			return fmt.Errorf("output file already exists: %s", dst)
		} else if err != nil && !os.IsNotExist(err) {
			return err
		} else if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return fmt.Errorf("unable to create output directory: %w", err)
		}
		if out, err = os.Create(dst); err != nil {
			return fmt.Errorf("unable to create output file %q: %w", dst, err)
		}
		defer out.Close()
	}

	if _, err := sheet.WriteTo(out); err != nil {
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	return nil
}
