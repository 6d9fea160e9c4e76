package dto

// CreateBlogRequest represents the blog creation request. Required fields are
// checked by the blog service so missing values map to the proper error
// envelope instead of a binding failure.
type CreateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}

// UpdateBlogRequest represents a partial blog update; absent fields are left
// untouched
type UpdateBlogRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	URL    *string `json:"url"`
	Likes  *int    `json:"likes"`
}

// BlogOwner is the owner identity denormalized onto blog reads
type BlogOwner struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// BlogResponse represents a blog
type BlogResponse struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Author string     `json:"author"`
	URL    string     `json:"url"`
	Likes  int        `json:"likes"`
	User   *BlogOwner `json:"user,omitempty"`
}
