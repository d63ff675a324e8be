package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/kolpakovda/go-journal-client/models"
)

const traceIDHeader = "X-Trace-ID"

// HTTPClientConfig carries the settings needed to build the resty client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter builds a [ServerAdapter] backed by a resty client
// bound to the configured backend origin.
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ── Auth ────────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.Token, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.installTokenFromAuthResponse(resp)
}

func (h *httpServerAdapter) Register(ctx context.Context, name, email, password string) (models.Token, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"name": name, "email": email, "password": password}).
		Post("/api/auth/register")
	if err != nil {
		return models.Token{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.installTokenFromAuthResponse(resp)
}

// installTokenFromAuthResponse decodes the {token} body, parses the user id
// from the unverified subject claim, and installs the token on the adapter.
func (h *httpServerAdapter) installTokenFromAuthResponse(resp *resty.Response) (models.Token, error) {
	var body models.AuthResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return models.Token{}, fmt.Errorf("decode auth response: %w", err)
	}

	token, err := models.ParseToken(body.Token)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse auth token: %w", err)
	}

	h.SetToken(token.SignedString)
	return token, nil
}

// ── Users ───────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	if err := h.getJSON(ctx, "/api/users/me", nil, &user); err != nil {
		return models.User{}, fmt.Errorf("get current user: %w", err)
	}
	return user, nil
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Put("/api/users/update")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var updated models.User
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.User{}, fmt.Errorf("decode updated profile: %w", err)
	}
	return updated, nil
}

func (h *httpServerAdapter) UploadProfilePhoto(ctx context.Context, filename string, content io.Reader) (models.User, error) {
	resp, err := h.request(ctx).
		SetFileReader("file", filename, content).
		Post("/api/users/upload-photo")
	if err != nil {
		return models.User{}, fmt.Errorf("upload profile photo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var updated models.User
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.User{}, fmt.Errorf("decode profile photo response: %w", err)
	}
	return updated, nil
}

func (h *httpServerAdapter) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	var users []models.User
	err := h.getJSON(ctx, "/api/users/search", map[string]string{"query": query}, &users)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}

func (h *httpServerAdapter) AllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := h.getJSON(ctx, "/api/users/all", nil, &users); err != nil {
		return nil, fmt.Errorf("get all users: %w", err)
	}
	return users, nil
}

// ── Journals (owner) ────────────────────────────────────────────────────────

func (h *httpServerAdapter) JournalsByUser(ctx context.Context, userID int64) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	path := "/api/journals/user/" + strconv.FormatInt(userID, 10)
	if err := h.getJSON(ctx, path, nil, &entries); err != nil {
		return nil, fmt.Errorf("get journals for user %d: %w", userID, err)
	}
	return entries, nil
}

func (h *httpServerAdapter) Journal(ctx context.Context, journalID int64) (models.JournalEntry, error) {
	var entry models.JournalEntry
	path := "/api/journals/" + strconv.FormatInt(journalID, 10)
	if err := h.getJSON(ctx, path, nil, &entry); err != nil {
		return models.JournalEntry{}, fmt.Errorf("get journal %d: %w", journalID, err)
	}
	return entry, nil
}

func (h *httpServerAdapter) CreateJournal(ctx context.Context, userID int64, entry models.JournalEntry) (models.JournalEntry, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(entry).
		Post("/api/journals/create/" + strconv.FormatInt(userID, 10))
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("create journal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.JournalEntry{}, err
	}

	var created models.JournalEntry
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.JournalEntry{}, fmt.Errorf("decode created journal: %w", err)
	}
	return created, nil
}

func (h *httpServerAdapter) UpdateJournal(ctx context.Context, journalID int64, entry models.JournalEntry) (models.JournalEntry, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(entry).
		Put("/api/journals/" + strconv.FormatInt(journalID, 10))
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("update journal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.JournalEntry{}, err
	}

	var updated models.JournalEntry
	if err = json.Unmarshal(resp.Body(), &updated); err != nil {
		return models.JournalEntry{}, fmt.Errorf("decode updated journal: %w", err)
	}
	return updated, nil
}

func (h *httpServerAdapter) DeleteJournal(ctx context.Context, journalID int64) error {
	return h.doAction(ctx, "DELETE", "/api/journals/"+strconv.FormatInt(journalID, 10))
}

func (h *httpServerAdapter) UploadJournalFiles(ctx context.Context, journalID int64, files []FileUpload) error {
	req := h.request(ctx)
	for _, f := range files {
		req.SetFileReader("files", f.Filename, f.Content)
	}

	resp, err := req.Post("/api/journals/" + strconv.FormatInt(journalID, 10) + "/upload")
	if err != nil {
		return fmt.Errorf("upload journal files request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteJournalFile(ctx context.Context, journalID int64, filename string) error {
	path := "/api/journals/" + strconv.FormatInt(journalID, 10) + "/media/" + url.PathEscape(filename)
	return h.doAction(ctx, "DELETE", path)
}

func (h *httpServerAdapter) PublishJournal(ctx context.Context, journalID int64) error {
	return h.doAction(ctx, "POST", "/api/journals/"+strconv.FormatInt(journalID, 10)+"/publish")
}

func (h *httpServerAdapter) UnpublishJournal(ctx context.Context, journalID int64) error {
	return h.doAction(ctx, "POST", "/api/journals/"+strconv.FormatInt(journalID, 10)+"/unpublish")
}

// ── Journals (public / published) ───────────────────────────────────────────

func (h *httpServerAdapter) PublicJournalsByUser(ctx context.Context, userID int64) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	path := "/api/journals/public/user/" + strconv.FormatInt(userID, 10)
	if err := h.getJSON(ctx, path, nil, &entries); err != nil {
		return nil, fmt.Errorf("get public journals for user %d: %w", userID, err)
	}
	return entries, nil
}

func (h *httpServerAdapter) PublishedJournals(ctx context.Context) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if err := h.getJSON(ctx, "/api/journals/published", nil, &entries); err != nil {
		return nil, fmt.Errorf("get published journals: %w", err)
	}
	return entries, nil
}

func (h *httpServerAdapter) SearchPublishedJournals(ctx context.Context, query string) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := h.getJSON(ctx, "/api/journals/published/search", map[string]string{"search": query}, &entries)
	if err != nil {
		return nil, fmt.Errorf("search published journals: %w", err)
	}
	return entries, nil
}

// ── Admin ───────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) PromoteUser(ctx context.Context, userID int64) error {
	return h.doAction(ctx, "POST", "/api/admin/promote/"+strconv.FormatInt(userID, 10))
}

func (h *httpServerAdapter) ToggleUserStatus(ctx context.Context, userID int64) error {
	return h.doAction(ctx, "PUT", "/api/users/toggle-status/"+strconv.FormatInt(userID, 10))
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, userID int64) error {
	return h.doAction(ctx, "DELETE", "/api/admin/users/"+strconv.FormatInt(userID, 10))
}

func (h *httpServerAdapter) AdminJournals(ctx context.Context) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if err := h.getJSON(ctx, "/api/admin/journals/all", nil, &entries); err != nil {
		return nil, fmt.Errorf("get admin journals: %w", err)
	}
	return entries, nil
}

func (h *httpServerAdapter) AdminDeleteJournal(ctx context.Context, journalID int64) error {
	return h.doAction(ctx, "DELETE", "/api/admin/journals/"+strconv.FormatInt(journalID, 10))
}

func (h *httpServerAdapter) AdminPublishedJournals(ctx context.Context) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if err := h.getJSON(ctx, "/api/journals/admin/published", nil, &entries); err != nil {
		return nil, fmt.Errorf("get ever-published journals: %w", err)
	}
	return entries, nil
}

func (h *httpServerAdapter) HideJournal(ctx context.Context, journalID int64) error {
	return h.doAction(ctx, "POST", "/api/journals/admin/"+strconv.FormatInt(journalID, 10)+"/hide")
}

func (h *httpServerAdapter) RestoreJournal(ctx context.Context, journalID int64) error {
	return h.doAction(ctx, "POST", "/api/journals/admin/"+strconv.FormatInt(journalID, 10)+"/restore")
}

// ── Friends ─────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) SendFriendRequest(ctx context.Context, receiverID int64) error {
	return h.doAction(ctx, "POST", "/api/friends/request/"+strconv.FormatInt(receiverID, 10))
}

func (h *httpServerAdapter) AcceptFriendRequest(ctx context.Context, requestID int64) error {
	return h.doAction(ctx, "POST", "/api/friends/accept/"+strconv.FormatInt(requestID, 10))
}

func (h *httpServerAdapter) RejectFriendRequest(ctx context.Context, requestID int64) error {
	return h.doAction(ctx, "POST", "/api/friends/reject/"+strconv.FormatInt(requestID, 10))
}

func (h *httpServerAdapter) PendingFriendRequests(ctx context.Context) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	if err := h.getJSON(ctx, "/api/friends/requests/pending", nil, &requests); err != nil {
		return nil, fmt.Errorf("get pending friend requests: %w", err)
	}
	return requests, nil
}

func (h *httpServerAdapter) SentFriendRequests(ctx context.Context) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	if err := h.getJSON(ctx, "/api/friends/requests/sent", nil, &requests); err != nil {
		return nil, fmt.Errorf("get sent friend requests: %w", err)
	}
	return requests, nil
}

func (h *httpServerAdapter) PendingRequestCount(ctx context.Context) (int, error) {
	var body models.CountResponse
	if err := h.getJSON(ctx, "/api/friends/requests/count", nil, &body); err != nil {
		return 0, fmt.Errorf("get pending request count: %w", err)
	}
	return body.Count, nil
}

func (h *httpServerAdapter) RelationshipStatus(ctx context.Context, userID int64) (models.RelationshipStatus, error) {
	var body models.RelationshipStatusResponse
	path := "/api/friends/status/" + strconv.FormatInt(userID, 10)
	if err := h.getJSON(ctx, path, nil, &body); err != nil {
		return models.RelationNone, fmt.Errorf("get relationship status for user %d: %w", userID, err)
	}
	return body.Status, nil
}

func (h *httpServerAdapter) RemoveFriend(ctx context.Context, friendID int64) error {
	return h.doAction(ctx, "DELETE", "/api/friends/remove/"+strconv.FormatInt(friendID, 10))
}

func (h *httpServerAdapter) FriendsOf(ctx context.Context, userID int64) ([]models.User, error) {
	var users []models.User
	path := "/api/friends/user/" + strconv.FormatInt(userID, 10)
	if err := h.getJSON(ctx, path, nil, &users); err != nil {
		return nil, fmt.Errorf("get friends of user %d: %w", userID, err)
	}
	return users, nil
}

// ── helpers ─────────────────────────────────────────────────────────────────

// request builds a context-bound request with a fresh trace id and the
// bearer token when one is installed.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, uuid.NewString())
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, query map[string]string, out any) error {
	req := h.request(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response of %s: %w", path, err)
	}
	return nil
}

// doAction issues a body-less mutation request and maps the response status.
func (h *httpServerAdapter) doAction(ctx context.Context, method, path string) error {
	resp, err := h.request(ctx).Execute(method, path)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	return mapHTTPError(resp)
}
