package feed

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/nachofazah/Ciu-RedSocial/internal/logging"
	"github.com/nachofazah/Ciu-RedSocial/internal/metrics"
	"github.com/nachofazah/Ciu-RedSocial/internal/models"
)

// Source is the slice of the backend gateway the aggregator needs.
type Source interface {
	ListCommentsByPost(ctx context.Context, postID int) ([]models.Comment, error)
	ListPostImages(ctx context.Context, postID int) ([]models.PostImage, error)
}

// Aggregation holds per-post data fetched separately from the posts themselves.
// Both maps carry a key for every aggregated post.
type Aggregation struct {
	CommentCounts map[int]int
	Images        map[int][]string
}

// Entry is one rendered feed block.
type Entry struct {
	Post          models.Post
	CommentsCount int
	ImageURLs     []string
}

type Aggregator struct {
	src   Source
	limit int
	log   logrus.FieldLogger
}

type Option func(*Aggregator)

// WithFanoutLimit caps in-flight sub-fetches. Zero or less means unlimited.
func WithFanoutLimit(n int) Option {
	return func(a *Aggregator) { a.limit = n }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(a *Aggregator) { a.log = l }
}

func NewAggregator(src Source, opts ...Option) *Aggregator {
	a := &Aggregator{src: src, log: logging.Discard()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate fetches comments and images for every post concurrently and folds
// them into id-keyed maps. A failed sub-fetch leaves that post at zero comments
// or no images; it is logged and never returned.
func (a *Aggregator) Aggregate(ctx context.Context, posts []models.Post) Aggregation {
	start := time.Now()
	defer func() { metrics.ObserveAggregation(time.Since(start)) }()

	agg := Aggregation{
		CommentCounts: make(map[int]int, len(posts)),
		Images:        make(map[int][]string, len(posts)),
	}
	for _, p := range posts {
		agg.CommentCounts[p.ID] = 0
		agg.Images[p.ID] = []string{}
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	if a.limit > 0 {
		g.SetLimit(a.limit)
	}

	for _, p := range posts {
		postID := p.ID

		g.Go(func() error {
			comments, err := a.src.ListCommentsByPost(ctx, postID)
			if err != nil {
				a.partialFailure(postID, "comments", err)
				return nil
			}
			mu.Lock()
			agg.CommentCounts[postID] = len(comments)
			mu.Unlock()
			return nil
		})

		g.Go(func() error {
			images, err := a.src.ListPostImages(ctx, postID)
			if err != nil {
				a.partialFailure(postID, "images", err)
				return nil
			}
			urls := make([]string, 0, len(images))
			for _, img := range images {
				urls = append(urls, img.URL)
			}
			mu.Lock()
			agg.Images[postID] = urls
			mu.Unlock()
			return nil
		})
	}

	// Goroutines never fail; the group is only here for SetLimit.
	_ = g.Wait()
	return agg
}

func (a *Aggregator) partialFailure(postID int, fetch string, err error) {
	metrics.FeedPartialFailure(fetch)
	a.log.WithFields(logrus.Fields{
		"post_id": postID,
		"fetch":   fetch,
	}).WithError(err).Warn("feed sub-fetch failed")
}

// Load sorts posts newest first, aggregates them and returns render-ready entries.
func (a *Aggregator) Load(ctx context.Context, posts []models.Post) []Entry {
	SortPostsNewestFirst(posts)
	return Entries(posts, a.Aggregate(ctx, posts))
}

func Entries(posts []models.Post, agg Aggregation) []Entry {
	entries := make([]Entry, 0, len(posts))
	for _, p := range posts {
		entries = append(entries, Entry{
			Post:          p,
			CommentsCount: agg.CommentCounts[p.ID],
			ImageURLs:     agg.Images[p.ID],
		})
	}
	return entries
}

func SortPostsNewestFirst(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

func SortCommentsOldestFirst(comments []models.Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
}
