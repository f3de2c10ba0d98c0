package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/blogit-app/blogit-cli/internal/client/models"
	"github.com/blogit-app/blogit-cli/internal/client/services"
)

// ListBlogs renders the blogs list view, optionally filtered by category.
// A backend with zero matching posts renders "No blogs found", not an
// error.
func (a *App) ListBlogs(ctx context.Context, category string) error {
	if !a.guard(ctx, "blogs") {
		return nil
	}

	blogs, err := a.blogs.List(ctx, category)
	if err != nil {
		a.renderError(ctx, err)
		return nil
	}

	if len(blogs) == 0 {
		fmt.Fprintln(a.out, "No blogs found")
		return nil
	}

	for _, b := range blogs {
		category := b.Category
		if category == "" {
			category = "-"
		}
		fmt.Fprintf(a.out, "%4d  %-40s  %-16s  @%s  %s\n",
			b.ID, truncate(b.Title, 40), truncate(category, 16),
			b.Author.Username, b.UpdatedAt.Format("2006-01-02"))
	}

	if categories, err := a.blogs.Categories(ctx); err == nil && len(categories) > 0 {
		fmt.Fprintf(a.out, "Categories: %s\n", strings.Join(categories, ", "))
	}
	return nil
}

// ShowBlog renders the blog detail view. Edit and delete affordances are
// mentioned only when the current user owns the blog; the check is
// recomputed on every render.
func (a *App) ShowBlog(ctx context.Context, id int64) error {
	if !a.guard(ctx, "blog") {
		return nil
	}

	blog, err := a.blogs.Get(ctx, id)
	if err != nil {
		a.renderError(ctx, err)
		return nil
	}

	a.renderBlog(ctx, blog)
	return nil
}

func (a *App) renderBlog(ctx context.Context, blog *models.BlogDetail) {
	fmt.Fprintf(a.out, "\n%s\n", blog.Title)
	if blog.Category != "" {
		fmt.Fprintf(a.out, "[%s]\n", blog.Category)
	}
	fmt.Fprintf(a.out, "by @%s, published %s\n", blog.Author.Username, blog.CreatedAt.Format("January 2, 2006"))
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, blog.Content)
	fmt.Fprintln(a.out)

	liked := "Like"
	if blog.HasLiked {
		liked = "Liked"
	}
	fmt.Fprintf(a.out, "%s • %d\n", liked, blog.LikesCount)

	if len(blog.Comments) > 0 {
		fmt.Fprintf(a.out, "\nComments (%d):\n", len(blog.Comments))
		for _, c := range blog.Comments {
			fmt.Fprintf(a.out, "  @%s: %s\n", c.User.Username, c.Content)
		}
	}

	if a.gate.IsOwner(ctx, blog.Author.ID) {
		fmt.Fprintf(a.out, "\nYou own this blog: 'edit %d' / 'delete %d'\n", blog.ID, blog.ID)
	}
}

// promptBlogForm reads the blog form fields, pre-filled from prev when
// editing. Returns the payload and whether the form passed local
// validation.
func (a *App) promptBlogForm(prev *models.BlogPayload) (models.BlogPayload, bool, error) {
	p := models.BlogPayload{}
	var err error

	hint := func(field, current string) string {
		if prev == nil || current == "" {
			return field
		}
		return fmt.Sprintf("%s [%s]", field, truncate(current, 30))
	}
	keep := func(entered, current string) string {
		if entered == "" && prev != nil {
			return current
		}
		return entered
	}

	var prevTitle, prevExcerpt, prevContent, prevImage, prevCategory string
	if prev != nil {
		prevTitle, prevExcerpt, prevContent = prev.Title, prev.Excerpt, prev.Content
		prevImage, prevCategory = prev.FeaturedImage, prev.Category
	}

	if p.Title, err = getSimpleText(a.reader, hint("Title", prevTitle), a.out); err != nil {
		return p, false, err
	}
	p.Title = keep(p.Title, prevTitle)

	if p.Excerpt, err = getSimpleText(a.reader, hint("Excerpt (max 200 chars)", prevExcerpt), a.out); err != nil {
		return p, false, err
	}
	p.Excerpt = keep(p.Excerpt, prevExcerpt)

	if p.Content, err = GetMultiline(a.reader, hint("Content", prevContent), a.out); err != nil {
		return p, false, err
	}
	p.Content = keep(p.Content, prevContent)

	if p.FeaturedImage, err = getSimpleText(a.reader, hint("Featured image URL (optional)", prevImage), a.out); err != nil {
		return p, false, err
	}
	p.FeaturedImage = keep(p.FeaturedImage, prevImage)

	if p.Category, err = getSimpleText(a.reader, hint("Category (optional)", prevCategory), a.out); err != nil {
		return p, false, err
	}
	p.Category = keep(p.Category, prevCategory)

	if p.Published, err = GetYesNo(a.reader, "Publish now?", a.out); err != nil {
		return p, false, err
	}

	if errs := services.ValidateBlogPayload(p); !errs.Valid() {
		a.printFieldErrors(errs)
		return p, false, nil
	}
	return p, true, nil
}

// CreateBlog runs the create form and, on success, navigates to the new
// blog's detail view.
func (a *App) CreateBlog(ctx context.Context) error {
	if !a.guard(ctx, "blog-create") {
		return nil
	}

	payload, ok, err := a.promptBlogForm(nil)
	if err != nil || !ok {
		return err
	}

	blog, err := a.blogs.Create(ctx, payload)
	if err != nil {
		a.renderError(ctx, err)
		return nil
	}

	fmt.Fprintln(a.out, "Blog created.")
	a.renderBlog(ctx, blog)
	return nil
}

// EditBlog runs the edit form for an existing blog. The form is only
// offered to the owner; a direct API misuse would be rejected by the
// backend anyway and surfaced as an authorization error.
func (a *App) EditBlog(ctx context.Context, id int64) error {
	if !a.guard(ctx, "blog-edit") {
		return nil
	}

	blog, err := a.blogs.Get(ctx, id)
	if err != nil {
		a.renderError(ctx, err)
		return nil
	}
	if !a.gate.IsOwner(ctx, blog.Author.ID) {
		fmt.Fprintln(a.out, "You can only edit your own blogs.")
		return nil
	}

	prev := models.BlogPayload{
		Title:         blog.Title,
		Excerpt:       blog.Excerpt,
		Content:       blog.Content,
		FeaturedImage: blog.FeaturedImage,
		Category:      blog.Category,
		Published:     blog.Published,
	}
	payload, ok, err := a.promptBlogForm(&prev)
	if err != nil || !ok {
		return err
	}

	updated, err := a.blogs.Update(ctx, id, payload)
	if err != nil {
		a.renderError(ctx, err)
		return nil
	}

	fmt.Fprintln(a.out, "Blog updated.")
	a.renderBlog(ctx, updated)
	return nil
}

// DeleteBlog confirms and removes a blog, then returns to the list view.
func (a *App) DeleteBlog(ctx context.Context, id int64) error {
	if !a.guard(ctx, "blog-delete") {
		return nil
	}

	blog, err := a.blogs.Get(ctx, id)
	if err != nil {
		a.renderError(ctx, err)
		return nil
	}
	if !a.gate.IsOwner(ctx, blog.Author.ID) {
		fmt.Fprintln(a.out, "You can only delete your own blogs.")
		return nil
	}

	confirmed, err := GetYesNo(a.reader, fmt.Sprintf("Delete %q?", blog.Title), a.out)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	if err := a.blogs.Delete(ctx, id, blog.Author.ID); err != nil {
		a.renderError(ctx, err)
		return nil
	}

	fmt.Fprintln(a.out, "Blog deleted.")
	return a.ListBlogs(ctx, "")
}

// LikeBlog toggles the current user's like. Each invocation flips state;
// the displayed count is whatever the latest response reports.
func (a *App) LikeBlog(ctx context.Context, id int64) error {
	if !a.guard(ctx, "blog-like") {
		return nil
	}

	state, err := a.blogs.ToggleLike(ctx, id)
	if err != nil {
		a.renderError(ctx, err)
		return nil
	}

	if state.HasLiked {
		fmt.Fprintf(a.out, "Liked • %d\n", state.LikesCount)
	} else {
		fmt.Fprintf(a.out, "Like removed • %d\n", state.LikesCount)
	}
	return nil
}

// CommentBlog posts a comment on a blog.
func (a *App) CommentBlog(ctx context.Context, id int64) error {
	if !a.guard(ctx, "blog-comment") {
		return nil
	}

	content, err := GetMultiline(a.reader, "Comment", a.out)
	if err != nil {
		return err
	}
	if content == "" {
		fmt.Fprintln(a.out, "Comment cannot be empty.")
		return nil
	}

	comment, err := a.blogs.Comment(ctx, id, content)
	if err != nil {
		a.renderError(ctx, err)
		return nil
	}

	fmt.Fprintf(a.out, "Comment posted as @%s.\n", comment.User.Username)
	return nil
}

// truncate shortens s to at most n characters, counting runes so a
// multi-byte title is never cut mid-rune.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
