package stats

import (
	"testing"

	"github.com/martijn/bloglist/internal/core/domain"
)

func blog(title, author string, likes int) *domain.Blog {
	return &domain.Blog{Title: title, Author: author, Likes: likes}
}

func listOfBlogs() []*domain.Blog {
	return []*domain.Blog{
		blog("React patterns", "Michael Chan", 7),
		blog("Go To Statement Considered Harmful", "Edsger W. Dijkstra", 5),
		blog("Canonical string reduction", "Edsger W. Dijkstra", 12),
		blog("First class tests", "Robert C. Martin", 10),
		blog("TDD harms architecture", "Robert C. Martin", 0),
		blog("Type wars", "Robert C. Martin", 2),
	}
}

func TestTotalLikes(t *testing.T) {
	tests := []struct {
		name  string
		blogs []*domain.Blog
		want  int
	}{
		{
			name:  "empty list is zero",
			blogs: nil,
			want:  0,
		},
		{
			name:  "single blog equals its likes",
			blogs: []*domain.Blog{blog("Go To Statement Considered Harmful", "Edsger W. Dijkstra", 5)},
			want:  5,
		},
		{
			name:  "bigger list is summed",
			blogs: listOfBlogs(),
			want:  36,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalLikes(tt.blogs); got != tt.want {
				t.Errorf("TotalLikes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFavoriteBlog(t *testing.T) {
	t.Run("empty list has no favorite", func(t *testing.T) {
		if got := FavoriteBlog(nil); got != nil {
			t.Errorf("FavoriteBlog() = %+v, want nil", got)
		}
	})

	t.Run("single blog is the favorite", func(t *testing.T) {
		blogs := []*domain.Blog{blog("React patterns", "Michael Chan", 7)}
		got := FavoriteBlog(blogs)
		if got != blogs[0] {
			t.Errorf("FavoriteBlog() = %+v, want %+v", got, blogs[0])
		}
	})

	t.Run("blog with the most likes wins", func(t *testing.T) {
		got := FavoriteBlog(listOfBlogs())
		if got == nil || got.Title != "Canonical string reduction" || got.Likes != 12 {
			t.Errorf("FavoriteBlog() = %+v, want Canonical string reduction with 12 likes", got)
		}
	})

	t.Run("ties keep the earliest blog", func(t *testing.T) {
		blogs := []*domain.Blog{
			blog("first", "a", 3),
			blog("second", "b", 3),
		}
		got := FavoriteBlog(blogs)
		if got == nil || got.Title != "first" {
			t.Errorf("FavoriteBlog() = %+v, want the first of the tied blogs", got)
		}
	})
}

func TestMostBlogs(t *testing.T) {
	t.Run("empty list has no leader", func(t *testing.T) {
		if got := MostBlogs(nil); got != nil {
			t.Errorf("MostBlogs() = %+v, want nil", got)
		}
	})

	t.Run("single author takes the full count", func(t *testing.T) {
		blogs := []*domain.Blog{
			blog("one", "Robert C. Martin", 1),
			blog("two", "Robert C. Martin", 2),
		}
		got := MostBlogs(blogs)
		if got == nil || got.Author != "Robert C. Martin" || got.Blogs != 2 {
			t.Errorf("MostBlogs() = %+v, want Robert C. Martin with 2", got)
		}
	})

	t.Run("author with the most posts wins", func(t *testing.T) {
		got := MostBlogs(listOfBlogs())
		if got == nil || got.Author != "Robert C. Martin" || got.Blogs != 3 {
			t.Errorf("MostBlogs() = %+v, want Robert C. Martin with 3", got)
		}
	})

	t.Run("ties keep the author who reached the count first", func(t *testing.T) {
		blogs := []*domain.Blog{
			blog("a1", "a", 0),
			blog("a2", "a", 0),
			blog("b1", "b", 0),
			blog("b2", "b", 0),
		}
		got := MostBlogs(blogs)
		if got == nil || got.Author != "a" || got.Blogs != 2 {
			t.Errorf("MostBlogs() = %+v, want a with 2", got)
		}
	})
}

func TestMostLikes(t *testing.T) {
	t.Run("empty list has no leader", func(t *testing.T) {
		if got := MostLikes(nil); got != nil {
			t.Errorf("MostLikes() = %+v, want nil", got)
		}
	})

	t.Run("single author takes the full sum", func(t *testing.T) {
		blogs := []*domain.Blog{
			blog("one", "Edsger W. Dijkstra", 5),
			blog("two", "Edsger W. Dijkstra", 12),
		}
		got := MostLikes(blogs)
		if got == nil || got.Author != "Edsger W. Dijkstra" || got.Likes != 17 {
			t.Errorf("MostLikes() = %+v, want Edsger W. Dijkstra with 17", got)
		}
	})

	t.Run("author with the highest total wins", func(t *testing.T) {
		got := MostLikes(listOfBlogs())
		if got == nil || got.Author != "Edsger W. Dijkstra" || got.Likes != 17 {
			t.Errorf("MostLikes() = %+v, want Edsger W. Dijkstra with 17", got)
		}
	})

	t.Run("ties keep the author who reached the total first", func(t *testing.T) {
		blogs := []*domain.Blog{
			blog("a1", "a", 4),
			blog("b1", "b", 4),
		}
		got := MostLikes(blogs)
		if got == nil || got.Author != "a" || got.Likes != 4 {
			t.Errorf("MostLikes() = %+v, want a with 4", got)
		}
	})

	t.Run("zero-likes collection promotes nobody", func(t *testing.T) {
		blogs := []*domain.Blog{
			blog("a1", "a", 0),
			blog("b1", "b", 0),
		}
		got := MostLikes(blogs)
		if got == nil || got.Author != "" || got.Likes != 0 {
			t.Errorf("MostLikes() = %+v, want empty author with 0", got)
		}
	})
}

func TestAggregatesDoNotMutateInput(t *testing.T) {
	blogs := listOfBlogs()
	want := listOfBlogs()

	TotalLikes(blogs)
	FavoriteBlog(blogs)
	MostBlogs(blogs)
	MostLikes(blogs)

	if len(blogs) != len(want) {
		t.Fatalf("input length changed: got %d, want %d", len(blogs), len(want))
	}
	for i := range blogs {
		if *blogs[i] != *want[i] {
			t.Errorf("blog %d mutated: got %+v, want %+v", i, blogs[i], want[i])
		}
	}
}
