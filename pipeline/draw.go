package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TransformAll runs the vertex stage for every vertex of a draw call.
// Invocations are data-independent, so the vertices are split into chunks
// fanned out over the available CPUs, all sharing the same read-only
// transform. Output order matches input order. If ctx is cancelled the draw
// is abandoned and no partial result is returned.
func TransformAll(ctx context.Context, t Transform, vertices []Vertex) ([]VertexOutput, error) {
	out := make([]VertexOutput, len(vertices))
	if len(vertices) == 0 {
		return out, ctx.Err()
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(vertices) {
		workers = len(vertices)
	}
	chunk := (len(vertices) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(vertices); start += chunk {
		end := start + chunk
		if end > len(vertices) {
			end = len(vertices)
		}
		start, end := start, end
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			for i := start; i < end; i++ {
				out[i] = TransformVertex(t, vertices[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
