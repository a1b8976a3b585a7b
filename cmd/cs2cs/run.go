package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/pebbe/go-proj-4/internal/config"
	"github.com/pebbe/go-proj-4/internal/pointio"
	"github.com/pebbe/go-proj-4/proj"
)

type options struct {
	from        string
	to          string
	definitions string
	precision   int
}

var errMissingProjection = errors.New("both --from and --to are required")

func loadDefinitions(opts options) (*config.Definitions, error) {
	if opts.definitions == "" {
		return config.DefaultDefinitions(), nil
	}
	return config.LoadDefinitions(opts.definitions)
}

func listDefinitions(opts options, w io.Writer) error {
	defs, err := loadDefinitions(opts)
	if err != nil {
		return err
	}
	for _, def := range defs.All() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", def.Name, def.Parameters); err != nil {
			return err
		}
	}
	return nil
}

func run(opts options, inputs []string, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	if opts.from == "" || opts.to == "" {
		return errMissingProjection
	}

	defs, err := loadDefinitions(opts)
	if err != nil {
		return err
	}

	src, err := openProjection(defs, opts.from, logger)
	if err != nil {
		return fmt.Errorf("source projection: %w", err)
	}
	defer src.Close()

	dst, err := openProjection(defs, opts.to, logger)
	if err != nil {
		return fmt.Errorf("target projection: %w", err)
	}
	defer dst.Close()

	points, err := readPoints(inputs, stdin)
	if err != nil {
		return err
	}

	out, err := src.Transform(points, dst)
	if err != nil {
		var perr *proj.Error
		if errors.As(err, &perr) {
			logger.Error("transform failed",
				zap.Int("points", len(points)),
				zap.Int("code", perr.Code),
				zap.String("message", perr.Message))
		}
		return err
	}
	logger.Debug("transformed", zap.Int("points", len(out)))

	return pointio.Write(stdout, out, opts.precision)
}

func openProjection(defs *config.Definitions, name string, logger *zap.Logger) (*proj.Projection, error) {
	parameters, err := defs.Resolve(name)
	if err != nil {
		return nil, err
	}
	p, err := proj.NewProjection(parameters)
	if err != nil {
		logger.Error("projection failed",
			zap.String("name", name),
			zap.String("parameters", parameters),
			zap.Error(err))
		return nil, err
	}
	logger.Debug("projection created",
		zap.String("name", name),
		zap.String("parameters", parameters))
	return p, nil
}

func readPoints(inputs []string, stdin io.Reader) ([]proj.Point3D, error) {
	if len(inputs) == 0 {
		return pointio.Read(stdin)
	}
	var points []proj.Point3D
	for _, name := range inputs {
		pts, err := readFile(name)
		if err != nil {
			return nil, err
		}
		points = append(points, pts...)
	}
	return points, nil
}

func readFile(name string) ([]proj.Point3D, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	points, err := pointio.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return points, nil
}
