package genotype

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"
	"github.com/zeebo/blake3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/limix/lim/bed"
	"github.com/limix/lim/persistence"
	"github.com/limix/lim/plink"
)

const (
	statusOK        = "ok"
	statusTruncated = "truncated"
	statusOversized = "oversized"
	statusUnknown   = "-"
)

type fileInfo struct {
	path        string
	size        int64
	orientation bed.Orientation
	expected    int64 // zero when the shape is unknown
	digest      string
}

func (fi fileInfo) status() string {
	switch {
	case fi.expected == 0:
		return statusUnknown
	case fi.size < fi.expected:
		return statusTruncated
	case fi.size > fi.expected:
		return statusOversized
	default:
		return statusOK
	}
}

func (a *app) infoCmd() *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "info FILE...",
		Short: "Summarise one or more .bed files",
		Long: `info prints size, orientation, expected size for the configured shape
and a BLAKE3 digest of every file. Files are inspected concurrently, each
through its own handle.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := a.inspectAll(cmd.Context(), args, workers)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(infos))
			for _, fi := range infos {
				expected := statusUnknown
				if fi.expected > 0 {
					expected = bytefmt.ByteSize(uint64(fi.expected))
				}
				rows = append(rows, []string{
					fi.path,
					strconv.FormatInt(fi.size, 10),
					bytefmt.ByteSize(uint64(fi.size)),
					fi.orientation.String(),
					expected,
					fi.status(),
					fi.digest,
				})
			}
			header := []string{"file", "bytes", "size", "orientation", "expected", "status", "blake3"}
			return a.render(cmd.OutOrStdout(), header, rows)
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 4, "Maximum number of files inspected at once")
	return cmd
}

func (a *app) inspectAll(ctx context.Context, paths []string, workers int) ([]fileInfo, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if workers < 1 {
		return nil, fmt.Errorf("invalid `workers`; expected: >= 1, given: %d", workers)
	}

	infos := make([]fileInfo, len(paths))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			fi, err := a.inspect(egCtx, path)
			if err != nil {
				return fmt.Errorf("inspect %s: %w", path, err)
			}
			infos[i] = fi
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return infos, nil
}

func (a *app) inspect(ctx context.Context, path string) (fileInfo, error) {
	if err := ctx.Err(); err != nil {
		return fileInfo{}, err
	}

	shape, err := a.diskShape(path)
	if err != nil {
		return fileInfo{}, err
	}

	fi := fileInfo{path: a.bedPath(path)}
	err = persistence.WithFile(fi.path, func(f persistence.Reader) (err error) {
		if fi.size, err = f.Size(); err != nil {
			return err
		}
		if fi.orientation, err = bed.ReadOrientation(f); err != nil {
			return err
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return err
		}
		h := blake3.New()
		if _, err := io.Copy(h, f); err != nil {
			return err
		}
		fi.digest = hex.EncodeToString(h.Sum(nil))
		return nil
	})
	if err != nil {
		return fileInfo{}, err
	}

	if shape.Len() > 0 {
		fi.expected = bed.NewLayout(shape).Size()
	}

	a.logger.Debug("inspected file",
		zap.String("path", fi.path),
		zap.Int64("size", fi.size),
		zap.Stringer("orientation", fi.orientation),
		zap.Int64("expected", fi.expected),
	)
	return fi, nil
}

// diskShape is the shape of the matrix as stored, rows first.
func (a *app) diskShape(path string) (bed.Shape, error) {
	if !a.cfg.Plink {
		return a.cfg.Shape(), nil
	}

	d, err := plink.Open(path, plink.WithLogger(a.logger))
	if err != nil {
		return bed.Shape{}, err
	}
	shape := d.Shape()
	if d.Orientation() == bed.VariantMajor {
		shape = shape.T()
	}
	return shape, d.Close()
}
