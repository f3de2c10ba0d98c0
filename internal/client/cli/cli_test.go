package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/blogit-app/blogit-cli/internal/client/api"
	"github.com/blogit-app/blogit-cli/internal/client/cache"
	"github.com/blogit-app/blogit-cli/internal/client/config"
	"github.com/blogit-app/blogit-cli/internal/client/models"
	"github.com/blogit-app/blogit-cli/internal/client/services"
	"github.com/blogit-app/blogit-cli/internal/client/session"
	"github.com/blogit-app/blogit-cli/internal/logging"
)

// ---- in-memory backends for wiring an App without sqlite or network ----

type kvStorage struct {
	values map[string]string
}

func (s *kvStorage) Get(ctx context.Context, key string) (string, error) {
	return s.values[key], nil
}

func (s *kvStorage) SetAll(ctx context.Context, values map[string]string) error {
	for k, v := range values {
		s.values[k] = v
	}
	return nil
}

func (s *kvStorage) Clear(ctx context.Context) error {
	s.values = map[string]string{}
	return nil
}

type memCache struct {
	entries map[cache.Key]*cache.Entry
}

func (m *memCache) Get(ctx context.Context, key cache.Key) (*cache.Entry, error) {
	return m.entries[key], nil
}

func (m *memCache) Put(ctx context.Context, key cache.Key, payload []byte) error {
	m.entries[key] = &cache.Entry{Key: key, Payload: payload, FetchedAt: time.Now()}
	return nil
}

func (m *memCache) MarkStale(ctx context.Context, kind string, id int64) error {
	for key, e := range m.entries {
		if key.Kind == kind && key.ID == id {
			e.Stale = true
		}
	}
	return nil
}

func (m *memCache) Clear(ctx context.Context) error {
	m.entries = map[cache.Key]*cache.Entry{}
	return nil
}

// scriptedClient serves canned responses for handler tests.
type scriptedClient struct {
	LoginResp *models.LoginResponse
	LoginErr  error
	Blogs     []models.BlogSummary
	Blog      *models.BlogDetail
	Like      *models.LikeState
	Comment   *models.Comment
	Profile   *models.UserProfile
	Err       error

	Deleted []int64
}

func (c *scriptedClient) Login(ctx context.Context, usernameOrEmail, password string) (*models.LoginResponse, error) {
	return c.LoginResp, c.LoginErr
}

func (c *scriptedClient) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	return &models.RegisterResponse{ID: 1, Username: req.Username, Message: "Account created successfully!"}, c.Err
}

func (c *scriptedClient) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	return c.Profile, c.Err
}

func (c *scriptedClient) ListBlogs(ctx context.Context, category string) ([]models.BlogSummary, error) {
	return c.Blogs, c.Err
}

func (c *scriptedClient) GetBlog(ctx context.Context, id int64) (*models.BlogDetail, error) {
	return c.Blog, c.Err
}

func (c *scriptedClient) CreateBlog(ctx context.Context, payload models.BlogPayload) (*models.BlogDetail, error) {
	return c.Blog, c.Err
}

func (c *scriptedClient) UpdateBlog(ctx context.Context, id int64, payload models.BlogPayload) (*models.BlogDetail, error) {
	return c.Blog, c.Err
}

func (c *scriptedClient) DeleteBlog(ctx context.Context, id int64) error {
	c.Deleted = append(c.Deleted, id)
	return c.Err
}

func (c *scriptedClient) ToggleLike(ctx context.Context, id int64) (*models.LikeState, error) {
	return c.Like, c.Err
}

func (c *scriptedClient) AddComment(ctx context.Context, id int64, content string) (*models.Comment, error) {
	return c.Comment, c.Err
}

func (c *scriptedClient) GetUserProfile(ctx context.Context, id int64) (*models.UserProfile, error) {
	return c.Profile, c.Err
}

func (c *scriptedClient) UpdateUserProfile(ctx context.Context, id int64, payload models.ProfilePayload) (*models.UserProfile, error) {
	return c.Profile, c.Err
}

var _ api.Client = (*scriptedClient)(nil)

// stubPrompts replaces the interactive input seams with queued answers.
func stubPrompts(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origText, origPw := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })

	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		answer := texts[0]
		texts = texts[1:]
		return answer, nil
	}
	getPassword = func(w io.Writer, prompt string) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		answer := passwords[0]
		passwords = passwords[1:]
		return []byte(answer), nil
	}
}

// newTestApp wires an App around the scripted client and in-memory state.
func newTestApp(t *testing.T, client api.Client) (*App, *kvStorage, *bytes.Buffer) {
	t.Helper()

	storage := &kvStorage{values: map[string]string{}}
	store := &memCache{entries: map[cache.Key]*cache.Entry{}}
	log := logging.NewDiscardLogger()
	gate := session.NewGate(client, storage, log)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	var out bytes.Buffer
	app := &App{
		config:   cfg,
		gate:     gate,
		blogs:    services.NewBlogService(client, store, cfg.CacheTTL, log),
		profiles: services.NewProfileService(client, store, gate, cfg.CacheTTL, log),
		log:      log,
		reader:   bufio.NewReader(strings.NewReader("")),
		out:      &out,
	}
	return app, storage, &out
}

func loginAs(t *testing.T, storage *kvStorage, id int64, username string) {
	t.Helper()
	storage.values[session.KeyToken] = "tok-1"
	storage.values[session.KeyIsAuthenticated] = session.AuthenticatedSentinel
	storage.values[session.KeyUser] = `{"id":` + strconv.FormatInt(id, 10) + `,"username":"` + username + `"}`
}

// ---- TESTS ----

func TestIdArg(t *testing.T) {
	app, _, out := newTestApp(t, &scriptedClient{})

	_, ok := app.idArg(nil, "show")
	require.False(t, ok)
	require.Contains(t, out.String(), "Usage: show <id>")

	out.Reset()
	_, ok = app.idArg([]string{"abc"}, "show")
	require.False(t, ok)
	require.Contains(t, out.String(), "Invalid id: abc")

	id, ok := app.idArg([]string{"42"}, "show")
	require.True(t, ok)
	require.Equal(t, int64(42), id)
}

func TestWhoami(t *testing.T) {
	ctx := context.Background()
	app, storage, out := newTestApp(t, &scriptedClient{})

	app.Whoami(ctx)
	require.Contains(t, out.String(), "Not logged in.")

	out.Reset()
	storage.values[session.KeyToken] = "tok-1"
	storage.values[session.KeyIsAuthenticated] = session.AuthenticatedSentinel
	storage.values[session.KeyUser] = `{"id":42,"username":"alice","email":"alice@example.com","firstName":"Alice","lastName":"Doe"}`

	app.Whoami(ctx)
	require.Contains(t, out.String(), "@alice")
	require.Contains(t, out.String(), "id=42")
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	client := &scriptedClient{LoginResp: &models.LoginResponse{Token: "tok-1", ID: 42, Username: "alice"}}
	app, storage, out := newTestApp(t, client)
	stubPrompts(t, []string{"alice"}, []string{"secret"})

	require.NoError(t, app.Login(ctx))
	require.Contains(t, out.String(), "Welcome back, alice!")
	require.Equal(t, "tok-1", storage.values[session.KeyToken])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	client := &scriptedClient{
		LoginErr: &api.Error{Kind: api.KindAuth, HTTPStatus: 401, Message: "invalid credentials"},
	}
	app, storage, out := newTestApp(t, client)
	stubPrompts(t, []string{"alice"}, []string{"wrong"})

	require.NoError(t, app.Login(ctx))
	require.Contains(t, out.String(), "Invalid credentials. Please try again.")
	require.Empty(t, storage.values[session.KeyToken])
}

func TestLogin_EmptyFormShowsFieldErrors(t *testing.T) {
	ctx := context.Background()
	app, _, out := newTestApp(t, &scriptedClient{})
	stubPrompts(t, []string{""}, []string{""})

	require.NoError(t, app.Login(ctx))
	require.Contains(t, out.String(), "Username or email is required")
	require.Contains(t, out.String(), "Password is required")
}

func TestGuard_AnonymousForwardsToLoginThenList(t *testing.T) {
	ctx := context.Background()
	client := &scriptedClient{
		LoginResp: &models.LoginResponse{Token: "tok-1", ID: 42, Username: "alice"},
		Blog:      &models.BlogDetail{ID: 7, Title: "Post", Author: models.Author{ID: 9, Username: "bob"}},
		Blogs: []models.BlogSummary{
			{ID: 7, Title: "Post", Author: models.Author{Username: "bob"}},
		},
	}
	app, _, out := newTestApp(t, client)
	stubPrompts(t, []string{"alice"}, []string{"secret"})

	// A protected view while anonymous: login first, then land on the
	// blogs list, not the requested detail view.
	require.NoError(t, app.ShowBlog(ctx, 7))

	output := out.String()
	require.Contains(t, output, "Please log in to continue.")
	require.Contains(t, output, "Welcome back, alice!")
	require.Contains(t, output, "Post")
	require.NotContains(t, output, "published")
}

func TestListBlogs_Empty(t *testing.T) {
	ctx := context.Background()
	app, storage, out := newTestApp(t, &scriptedClient{})
	loginAs(t, storage, 42, "alice")

	require.NoError(t, app.ListBlogs(ctx, "Nonexistent"))
	require.Contains(t, out.String(), "No blogs found")
}

func TestShowBlog_OwnerAffordance(t *testing.T) {
	ctx := context.Background()
	client := &scriptedClient{
		Blog: &models.BlogDetail{ID: 7, Title: "Mine", Content: "Body", Author: models.Author{ID: 42, Username: "alice"}},
	}
	app, storage, out := newTestApp(t, client)
	loginAs(t, storage, 42, "alice")

	require.NoError(t, app.ShowBlog(ctx, 7))
	require.Contains(t, out.String(), "You own this blog: 'edit 7' / 'delete 7'")
}

func TestShowBlog_NonOwnerHasNoAffordance(t *testing.T) {
	ctx := context.Background()
	client := &scriptedClient{
		Blog: &models.BlogDetail{ID: 7, Title: "Theirs", Content: "Body", Author: models.Author{ID: 9, Username: "bob"}},
	}
	app, storage, out := newTestApp(t, client)
	loginAs(t, storage, 42, "alice")

	require.NoError(t, app.ShowBlog(ctx, 7))
	require.NotContains(t, out.String(), "You own this blog")
}

func TestEditBlog_NotOwnerIsRefused(t *testing.T) {
	ctx := context.Background()
	client := &scriptedClient{
		Blog: &models.BlogDetail{ID: 7, Title: "Theirs", Author: models.Author{ID: 9, Username: "bob"}},
	}
	app, storage, out := newTestApp(t, client)
	loginAs(t, storage, 42, "alice")

	require.NoError(t, app.EditBlog(ctx, 7))
	require.Contains(t, out.String(), "You can only edit your own blogs.")
}

func TestDeleteBlog_NotOwnerIsRefused(t *testing.T) {
	ctx := context.Background()
	client := &scriptedClient{
		Blog: &models.BlogDetail{ID: 7, Title: "Theirs", Author: models.Author{ID: 9, Username: "bob"}},
	}
	app, storage, out := newTestApp(t, client)
	loginAs(t, storage, 42, "alice")

	require.NoError(t, app.DeleteBlog(ctx, 7))
	require.Contains(t, out.String(), "You can only delete your own blogs.")
	require.Empty(t, client.Deleted)
}

func TestLikeBlog(t *testing.T) {
	ctx := context.Background()
	client := &scriptedClient{Like: &models.LikeState{LikesCount: 5, HasLiked: true}}
	app, storage, out := newTestApp(t, client)
	loginAs(t, storage, 42, "alice")

	require.NoError(t, app.LikeBlog(ctx, 7))
	require.Contains(t, out.String(), "Liked • 5")

	out.Reset()
	client.Like = &models.LikeState{LikesCount: 4, HasLiked: false}
	require.NoError(t, app.LikeBlog(ctx, 7))
	require.Contains(t, out.String(), "Like removed • 4")
}

func TestLogin_WipesPasswordBuffer(t *testing.T) {
	ctx := context.Background()
	client := &scriptedClient{LoginResp: &models.LoginResponse{Token: "tok-1", ID: 42, Username: "alice"}}
	app, _, _ := newTestApp(t, client)

	origText, origPw := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })

	buf := []byte("secret")
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return "alice", nil
	}
	getPassword = func(w io.Writer, prompt string) ([]byte, error) {
		return buf, nil
	}

	require.NoError(t, app.Login(ctx))
	for i, v := range buf {
		require.Zero(t, v, "password buffer byte %d not wiped", i)
	}
}

func TestTruncate_RuneBoundaries(t *testing.T) {
	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "exactlyten", truncate("exactlyten", 10))
	require.Equal(t, "abcd…", truncate("abcdefgh", 5))

	// Multi-byte titles must be cut between runes, never inside one.
	got := truncate("ザ・ゴー・プログラミング言語", 5)
	require.True(t, utf8.ValidString(got))
	require.Equal(t, "ザ・ゴー…", got)
}

func TestRoot_SharedReaderServesCommandsAndForms(t *testing.T) {
	ctx := context.Background()
	client := &scriptedClient{
		Comment: &models.Comment{ID: 3, Content: "Great post", User: models.Author{Username: "alice"}},
	}
	app, storage, out := newTestApp(t, client)
	loginAs(t, storage, 42, "alice")

	// Piped input: a command line, then a form read by the same reader.
	app.reader = bufio.NewReader(strings.NewReader("comment 7\nGreat post\n\nexit\n"))
	app.Root(ctx)

	output := out.String()
	require.Contains(t, output, "Comment posted as @alice.")
	require.Contains(t, output, "Bye!")
}

func TestRoot_ExitsOnEOF(t *testing.T) {
	ctx := context.Background()
	app, _, out := newTestApp(t, &scriptedClient{})

	app.reader = bufio.NewReader(strings.NewReader("unknowncmd"))
	app.Root(ctx)

	require.Contains(t, out.String(), "Unknown command: unknowncmd")
}

func TestRenderError(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"authorization",
			&api.Error{Kind: api.KindAuthorization, HTTPStatus: 403, Message: "not yours"},
			"You don't have permission to do that.",
		},
		{
			"validation shows backend message",
			&api.Error{Kind: api.KindValidation, HTTPStatus: 400, Message: "Email already registered"},
			"Invalid input: Email already registered",
		},
		{
			"not found",
			&api.Error{Kind: api.KindNotFound, HTTPStatus: 404},
			"Not found.",
		},
		{
			"transport",
			&api.Error{Kind: api.KindTransport, Message: "connection refused"},
			"Cannot reach the server.",
		},
		{
			"server",
			&api.Error{Kind: api.KindServer, HTTPStatus: 500},
			"Something went wrong.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, out := newTestApp(t, &scriptedClient{})
			app.renderError(ctx, tt.err)
			require.Contains(t, out.String(), tt.want)
		})
	}
}

func TestRenderError_ExpiredSessionForwardsToLogin(t *testing.T) {
	ctx := context.Background()
	client := &scriptedClient{LoginResp: &models.LoginResponse{Token: "tok-2", ID: 42, Username: "alice"}}
	app, storage, out := newTestApp(t, client)
	loginAs(t, storage, 42, "alice")
	stubPrompts(t, []string{"alice"}, []string{"secret"})

	app.renderError(ctx, &api.Error{Kind: api.KindAuth, HTTPStatus: 401, Message: "token expired"})

	require.Contains(t, out.String(), "Your session is no longer valid. Please log in again.")
	require.Contains(t, out.String(), "Welcome back, alice!")
	require.Equal(t, "tok-2", storage.values[session.KeyToken])
}
