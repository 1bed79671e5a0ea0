package pipeline

import (
	"context"
	"sort"
	"sync"

	"github.com/orthologr/gestimator/checkpoint"
	"github.com/orthologr/gestimator/pairwise"
)

// pair is a pair of sequence indices, i < j.
type pair struct {
	i, j int
}

func newPair(a, b int) pair {
	if b < a {
		a, b = b, a
	}
	return pair{a, b}
}

// candidates returns partners of query q which have to be computed.
func (e *Estimator) candidates(q int) (partners []int) {
	for j := range e.ali {
		if j == q {
			continue
		}
		if e.cfg.Selection == SelectOrder && len(partners) >= e.cfg.MaxHits {
			break
		}
		partners = append(partners, j)
	}
	return
}

// compare computes all the pairs and fills e.results.
func (e *Estimator) compare(ctx context.Context, store *checkpoint.Store) error {
	seen := make(map[pair]int)
	var pairs []pair
	partners := make([][]int, len(e.ali))
	for q := range e.ali {
		partners[q] = e.candidates(q)
		for _, j := range partners[q] {
			p := newPair(q, j)
			if _, ok := seen[p]; !ok {
				seen[p] = len(pairs)
				pairs = append(pairs, p)
			}
		}
	}
	log.Infof("Comparing %d sequence pairs (%s selection, max hits=%d, threads=%d)",
		len(pairs), e.cfg.Selection, e.cfg.MaxHits, e.cfg.Threads)

	computed, err := e.computePairs(ctx, pairs, store)
	if err != nil {
		return err
	}

	e.results = make([]pairwise.Result, 0, 2*len(pairs))
	for q := range e.ali {
		rs := make([]pairwise.Result, 0, len(partners[q]))
		for _, j := range partners[q] {
			r := computed[seen[newPair(q, j)]]
			if r.Query != e.ali[q].Name {
				r = r.Swap()
			}
			rs = append(rs, r)
		}
		if e.cfg.Selection == SelectBest {
			sort.SliceStable(rs, func(a, b int) bool {
				return closer(rs[a], rs[b])
			})
		}
		if len(rs) > e.cfg.MaxHits {
			rs = rs[:e.cfg.MaxHits]
		}
		e.results = append(e.results, rs...)
	}
	return nil
}

// closer tests if r1 is a better hit than r2. Pairs without compared
// sites go last.
func closer(r1, r2 pairwise.Result) bool {
	if (r1.Sites == 0) != (r2.Sites == 0) {
		return r2.Sites == 0
	}
	return r1.PDistance() < r2.PDistance()
}

// report logs a computed pair.
func (e *Estimator) report(r pairwise.Result) {
	if e.cfg.Verbose {
		log.Notice(r)
	} else {
		log.Debug(r)
	}
}

// computePairs computes pairs using a pool of goroutines. Results are
// stored at the pair index, no accumulator is shared between pairs.
// Stored results are taken from the checkpoint if available.
func (e *Estimator) computePairs(ctx context.Context, pairs []pair, store *checkpoint.Store) ([]pairwise.Result, error) {
	results := make([]pairwise.Result, len(pairs))
	todo := make([]int, 0, len(pairs))
	for k, p := range pairs {
		r, err := store.Get(e.ali[p.i].Name, e.ali[p.j].Name)
		if err != nil {
			log.Warningf("Error reading checkpoint: %v", err)
		}
		if r != nil {
			results[k] = *r
			e.report(*r)
			continue
		}
		todo = append(todo, k)
	}
	if len(todo) == 0 {
		return results, nil
	}

	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	threads := e.cfg.Threads
	if threads > len(todo) {
		threads = len(todo)
	}
	jobs := make(chan int, threads*2)
	done := make(chan int, threads*2)
	errs := make(chan error, threads)

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for k := range jobs {
				if wctx.Err() != nil {
					return
				}
				p := pairs[k]
				r, err := pairwise.Compare(e.ali[p.i], e.ali[p.j], e.gcode)
				if err != nil {
					errs <- err
					cancel()
					return
				}
				results[k] = r
				select {
				case done <- k:
				case <-wctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, k := range todo {
			select {
			case jobs <- k:
			case <-wctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(done)
	}()

	n := 0
	for k := range done {
		n++
		e.report(results[k])
		if err := store.Put(results[k]); err != nil {
			log.Warningf("Error writing checkpoint: %v", err)
		}
	}

	select {
	case err := <-errs:
		return nil, err
	default:
	}
	if n < len(todo) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, context.Canceled
	}
	return results, nil
}
