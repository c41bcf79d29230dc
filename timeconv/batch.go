package timeconv

import (
	"context"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/Jyhwenchai/Tools-sub004/timeconv/internal/converr"
)

// BatchConvert converts every input under one set of options and returns
// exactly len(inputs) outcomes in input order, regardless of how work was
// partitioned. Small batches run sequentially; larger ones are split into
// contiguous chunks across workers, each writing results directly into
// its slots of a pre-sized array so completion order cannot affect
// ordering. There is no mid-flight cancellation: once started, all chunks
// run to completion.
func (e *Engine) BatchConvert(ctx context.Context, inputs []string, opts Options) []Outcome {
	// History and live mode are meaningless per item inside a batch.
	opts.BatchMode = true
	opts.LiveMode = false
	opts.RecordHistory = false

	results := make([]Outcome, len(inputs))
	if len(inputs) == 0 {
		return results
	}
	batchItemsTotal.Add(float64(len(inputs)))

	if len(inputs) < e.seqThreshold {
		for i, input := range inputs {
			results[i] = e.Convert(ctx, input, opts)
		}
		return results
	}

	workers := e.parallelism
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := (len(inputs) + workers - 1) / workers

	var wg sync.WaitGroup
	worker := 0
	for start := 0; start < len(inputs); start += chunk {
		end := min(start+chunk, len(inputs))
		wg.Add(1)
		go e.runChunk(ctx, &wg, strconv.Itoa(worker), inputs, results, start, end, opts)
		worker++
	}
	wg.Wait()
	return results
}

// runChunk converts inputs[start:end] into the matching result slots.
func (e *Engine) runChunk(ctx context.Context, wg *sync.WaitGroup, label string, inputs []string, results []Outcome, start, end int, opts Options) {
	defer wg.Done()

	// A panic in one chunk must not take down the batch; the Convert
	// pipeline never panics, so this guards lower-layer surprises only.
	// Slots the chunk never reached still get well-formed failures.
	i := start
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Interface("panic", r).Str("worker", label).Msg("batch worker panic")
			for ; i < end; i++ {
				results[i] = failure(converr.New(converr.OutputGenerationFailed,
					"conversion aborted by an internal error"))
			}
		}
	}()

	started := time.Now()
	for ; i < end; i++ {
		results[i] = e.Convert(ctx, inputs[i], opts)
	}
	batchChunkDuration.WithLabelValues(label).Observe(time.Since(started).Seconds())
}
