// Package stats provides pure aggregate functions over a blog collection.
// None of the functions mutate their input; absence of data is reported by a
// nil result, never an error.
package stats

import "github.com/martijn/bloglist/internal/core/domain"

// AuthorCount is the leader of a per-author post count.
type AuthorCount struct {
	Author string
	Blogs  int
}

// AuthorLikes is the leader of a per-author like total.
type AuthorLikes struct {
	Author string
	Likes  int
}

// TotalLikes returns the sum of likes across all blogs, 0 for an empty
// collection.
func TotalLikes(blogs []*domain.Blog) int {
	total := 0
	for _, blog := range blogs {
		total += blog.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, nil for an empty
// collection. Ties keep the earliest blog in input order: a later blog takes
// the lead only with strictly more likes.
func FavoriteBlog(blogs []*domain.Blog) *domain.Blog {
	if len(blogs) == 0 {
		return nil
	}

	favorite := blogs[0]
	for _, blog := range blogs[1:] {
		if blog.Likes > favorite.Likes {
			favorite = blog
		}
	}
	return favorite
}

// MostBlogs returns the author with the highest post count, nil for an empty
// collection. Tallies are built in a single left-to-right pass and the leader
// changes only when a tally strictly exceeds the running maximum, so the
// first author to reach the top count wins ties.
func MostBlogs(blogs []*domain.Blog) *AuthorCount {
	if len(blogs) == 0 {
		return nil
	}

	counts := make(map[string]int, len(blogs))
	leader := &AuthorCount{}
	for _, blog := range blogs {
		counts[blog.Author]++
		if counts[blog.Author] > leader.Blogs {
			leader.Author = blog.Author
			leader.Blogs = counts[blog.Author]
		}
	}
	return leader
}

// MostLikes returns the author with the highest like total, nil for an empty
// collection. Same pass and tie-break as MostBlogs; an author whose total
// never exceeds zero never takes the lead.
func MostLikes(blogs []*domain.Blog) *AuthorLikes {
	if len(blogs) == 0 {
		return nil
	}

	totals := make(map[string]int, len(blogs))
	leader := &AuthorLikes{}
	for _, blog := range blogs {
		totals[blog.Author] += blog.Likes
		if totals[blog.Author] > leader.Likes {
			leader.Author = blog.Author
			leader.Likes = totals[blog.Author]
		}
	}
	return leader
}
