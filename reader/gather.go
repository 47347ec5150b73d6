package reader

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/seiscube/errs"
	"github.com/arloliu/seiscube/geometry"
	"github.com/arloliu/seiscube/internal/pool"
)

// blockJob decodes one block and copies the part a request needs into its output.
//
// scatter receives the full decoded block, padding included, and must only write the
// output region owned by this block. Regions of different jobs never overlap, which
// lets jobs of one read run concurrently.
type blockJob struct {
	coord   geometry.BlockCoord
	scatter func(block []float32)
}

// gather runs every job, each block being fetched and decoded exactly once.
// The first failure aborts the read and jobs not yet started are skipped.
func (r *Reader) gather(jobs []blockJob) error {
	if r.parallelism <= 1 || len(jobs) <= 1 {
		for _, job := range jobs {
			if err := r.runJob(job); err != nil {
				return err
			}
		}

		return nil
	}

	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(r.parallelism)
	for _, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			return r.runJob(job)
		})
	}

	return eg.Wait()
}

func (r *Reader) runJob(job blockJob) error {
	mode := r.store.Mode().String()

	data, err := r.store.Fetch(job.coord)
	if err != nil {
		level.Warn(r.logger).Log("msg", "block fetch failed", "block", job.coord, "mode", mode, "err", err)
		return fmt.Errorf("block %s: %w", job.coord, err)
	}
	r.metrics.observeFetch(mode, len(data))

	scratch, cleanup := pool.GetFloat32Slice(r.geo.BlockLen())
	defer cleanup()

	start := time.Now()
	block, err := r.decoder.Decode(scratch, data, r.geo.Block, r.geo.Tier)
	r.metrics.observeDecode(time.Since(start))
	if err == nil && len(block) != r.geo.BlockLen() {
		err = fmt.Errorf("%w: decoder returned %d samples, want %d", errs.ErrInvalidBlockSize, len(block), r.geo.BlockLen())
	}
	if err != nil {
		level.Warn(r.logger).Log("msg", "block decode failed", "block", job.coord, "bytes", len(data), "err", err)
		return fmt.Errorf("block %s: %w", job.coord, err)
	}

	job.scatter(block)

	return nil
}

// track guards a read against a closed reader and records its outcome.
func track[T any](r *Reader, op string, read func() (T, error)) (T, error) {
	if r.closed.Load() {
		var zero T
		return zero, errs.ErrClosed
	}

	out, err := read()
	r.metrics.observeRead(op, err)
	if err != nil {
		var zero T
		return zero, err
	}

	return out, nil
}
