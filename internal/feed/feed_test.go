package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nachofazah/Ciu-RedSocial/internal/models"
)

type fakeSource struct {
	commentCalls atomic.Int32
	imageCalls   atomic.Int32

	comments    map[int][]models.Comment
	images      map[int][]models.PostImage
	failComment map[int]bool
	failImage   map[int]bool

	delay    time.Duration
	mu       sync.Mutex
	inFlight int
	peak     int
}

func (f *fakeSource) enter() func() {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.peak {
		f.peak = f.inFlight
	}
	f.mu.Unlock()
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}
}

func (f *fakeSource) ListCommentsByPost(ctx context.Context, postID int) ([]models.Comment, error) {
	f.commentCalls.Add(1)
	defer f.enter()()
	if f.failComment[postID] {
		return nil, errors.New("comments unavailable")
	}
	return f.comments[postID], nil
}

func (f *fakeSource) ListPostImages(ctx context.Context, postID int) ([]models.PostImage, error) {
	f.imageCalls.Add(1)
	defer f.enter()()
	if f.failImage[postID] {
		return nil, errors.New("images unavailable")
	}
	return f.images[postID], nil
}

func makePosts(n int) []models.Post {
	posts := make([]models.Post, 0, n)
	base := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= n; i++ {
		posts = append(posts, models.Post{ID: i * 10, CreatedAt: base.Add(time.Duration(i) * time.Hour)})
	}
	return posts
}

func TestAggregateIssuesTwoFetchesPerPost(t *testing.T) {
	posts := makePosts(5)
	src := &fakeSource{comments: map[int][]models.Comment{}, images: map[int][]models.PostImage{}}
	for i, p := range posts {
		src.comments[p.ID] = make([]models.Comment, i)
		for j := 0; j < i+1; j++ {
			src.images[p.ID] = append(src.images[p.ID], models.PostImage{ID: j, URL: fmt.Sprintf("https://img/%d/%d.png", p.ID, j), PostID: p.ID})
		}
	}

	agg := NewAggregator(src).Aggregate(context.Background(), posts)

	assert.EqualValues(t, len(posts), src.commentCalls.Load())
	assert.EqualValues(t, len(posts), src.imageCalls.Load())
	require.Len(t, agg.CommentCounts, len(posts))
	require.Len(t, agg.Images, len(posts))
	for i, p := range posts {
		assert.Equal(t, i, agg.CommentCounts[p.ID])
		want := make([]string, 0, i+1)
		for j := 0; j < i+1; j++ {
			want = append(want, fmt.Sprintf("https://img/%d/%d.png", p.ID, j))
		}
		assert.Equal(t, want, agg.Images[p.ID])
	}
}

func TestAggregateIsolatesFailures(t *testing.T) {
	posts := makePosts(3)
	src := &fakeSource{
		comments: map[int][]models.Comment{
			10: {{ID: 1}}, 20: {{ID: 2}, {ID: 3}}, 30: {{ID: 4}},
		},
		images: map[int][]models.PostImage{
			10: {{URL: "a"}}, 20: {{URL: "b"}}, 30: {{URL: "c"}},
		},
		failComment: map[int]bool{20: true},
		failImage:   map[int]bool{30: true},
	}

	agg := NewAggregator(src).Aggregate(context.Background(), posts)

	assert.Equal(t, map[int]int{10: 1, 20: 0, 30: 1}, agg.CommentCounts)
	assert.Equal(t, map[int][]string{10: {"a"}, 20: {"b"}, 30: {}}, agg.Images)
}

func TestAggregateRunsConcurrently(t *testing.T) {
	posts := makePosts(4)
	src := &fakeSource{delay: 30 * time.Millisecond}

	start := time.Now()
	NewAggregator(src).Aggregate(context.Background(), posts)
	took := time.Since(start)

	assert.Less(t, took, 8*src.delay, "fetches ran serially")
	assert.Greater(t, src.peak, 1)
}

func TestAggregateFanoutLimit(t *testing.T) {
	posts := makePosts(6)
	src := &fakeSource{delay: 5 * time.Millisecond}

	NewAggregator(src, WithFanoutLimit(2)).Aggregate(context.Background(), posts)

	assert.LessOrEqual(t, src.peak, 2)
	assert.EqualValues(t, 6, src.commentCalls.Load())
}

func TestAggregateEmpty(t *testing.T) {
	agg := NewAggregator(&fakeSource{}).Aggregate(context.Background(), nil)
	assert.Empty(t, agg.CommentCounts)
	assert.Empty(t, agg.Images)
}

func TestLoadSortsNewestFirst(t *testing.T) {
	posts := makePosts(3)
	src := &fakeSource{comments: map[int][]models.Comment{30: {{ID: 1}, {ID: 2}}}}

	entries := NewAggregator(src).Load(context.Background(), posts)

	require.Len(t, entries, 3)
	assert.Equal(t, []int{30, 20, 10}, []int{entries[0].Post.ID, entries[1].Post.ID, entries[2].Post.ID})
	assert.Equal(t, 2, entries[0].CommentsCount)
	assert.Equal(t, []string{}, entries[1].ImageURLs)
}

func TestSortCommentsOldestFirst(t *testing.T) {
	base := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	comments := []models.Comment{
		{ID: 3, CreatedAt: base.Add(3 * time.Minute)},
		{ID: 1, CreatedAt: base.Add(1 * time.Minute)},
		{ID: 4, CreatedAt: base.Add(4 * time.Minute)},
		{ID: 2, CreatedAt: base.Add(2 * time.Minute)},
	}

	SortCommentsOldestFirst(comments)

	for i, c := range comments {
		assert.Equal(t, i+1, c.ID)
	}
}
