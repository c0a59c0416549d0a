package api_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"pujo-gallery/internal/conf"
	"pujo-gallery/internal/dao/cache"
	"pujo-gallery/internal/dao/kv"
	"pujo-gallery/internal/dao/search"
	"pujo-gallery/internal/dao/storage"
	"pujo-gallery/internal/routers"
	"pujo-gallery/internal/routers/api"
	"pujo-gallery/internal/service"
	"pujo-gallery/pkg/json"
)

type envelope struct {
	Code    int            `json:"code"`
	Msg     string         `json:"msg"`
	Data    map[string]any `json:"data"`
	Details []string       `json:"details"`
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	conf.AppSetting = &conf.AppSettingS{
		Name:              "Pujo Gallery",
		Host:              "pujogallery.com",
		DefaultPageSize:   10,
		MaxPageSize:       100,
		TrendingLimit:     5,
		FallbackHashtags:  []string{"#DurgaPuja2025"},
		CurrentUserId:     "bikram-mondal",
		CurrentUserName:   "Bikram Mondal",
		CurrentUserAvatar: "my-image.jfif",
	}
	conf.ServerSetting = &conf.ServerSettingS{
		DebugWhiteList: []string{"192.0.2.1"},
	}

	kvs, kvVersion := kv.NewMemoryKeyValueService()
	store := service.NewFeedStore(kvs)
	store.Load(context.Background())
	cis, _ := cache.NewNoneCacheIndexService(store)
	store.AddSink(cis)
	ts, tsVersion := search.NewSimpleTweetSearchService()
	store.AddSink(service.NewSearchIndexer(ts))
	service.PushPostsToSearch(ts, store)
	oss, ossVersion := storage.NewDataURIService(0, 0, 1024, 1024)

	s := api.New(store, cis, ts, oss, kvVersion, tsVersion, ossVersion)
	return routers.NewRouter(s)
}

func doRequest(t *testing.T, e *gin.Engine, method, path string, body any, user string) (int, *envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.Header.Set("X-User-Id", user)
	}
	return serve(t, e, req)
}

func serve(t *testing.T, e *gin.Engine, req *http.Request) (int, *envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	resp := &envelope{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), resp); err != nil {
			t.Fatalf("%s %s: decode %q: %v", req.Method, req.URL, w.Body.String(), err)
		}
	}
	return w.Code, resp
}

func TestGetPostList(t *testing.T) {
	e := newTestEngine(t)

	status, resp := doRequest(t, e, http.MethodGet, "/v1/posts?page=1&page_size=2", nil, "")
	if status != http.StatusOK || resp.Code != 0 {
		t.Fatalf("want 200/0 but got %d/%d", status, resp.Code)
	}
	list := resp.Data["list"].([]any)
	if len(list) != 2 {
		t.Errorf("want 2 posts but got %d", len(list))
	}
	if id := list[0].(map[string]any)["id"]; id != "2" {
		t.Errorf("want post 2 first but got %v", id)
	}
	pager := resp.Data["pager"].(map[string]any)
	if pager["total_rows"].(float64) != 3 || pager["page_size"].(float64) != 2 {
		t.Errorf("unexpected pager %v", pager)
	}
}

func TestPostLifecycle(t *testing.T) {
	e := newTestEngine(t)

	status, resp := doRequest(t, e, http.MethodPost, "/v1/post", map[string]any{"content": "Sindoor khela #SubhoBijoya"}, "")
	if status != http.StatusOK {
		t.Fatalf("create: want 200 but got %d %v", status, resp)
	}
	id := resp.Data["id"].(string)
	if !strings.HasPrefix(id, "post-") {
		t.Errorf("want a post- id but got %q", id)
	}
	if resp.Data["owned_by_current_user"] != true {
		t.Error("want the new post owned by its author")
	}
	if author := resp.Data["author"].(map[string]any); author["name"] != "Bikram Mondal" {
		t.Errorf("want the default user as author but got %v", author)
	}

	status, resp = doRequest(t, e, http.MethodPost, "/v1/post", map[string]any{"content": "   "}, "")
	if status != http.StatusBadRequest || resp.Code != 10001 {
		t.Errorf("empty draft: want 400/10001 but got %d/%d", status, resp.Code)
	}

	status, resp = doRequest(t, e, http.MethodPost, "/v1/post", map[string]any{"blog": true, "image": "pandal.jpeg", "content": ""}, "")
	if status != http.StatusBadRequest || resp.Code != 10001 {
		t.Errorf("blog with only media: want 400/10001 but got %d/%d", status, resp.Code)
	}
	_, resp = doRequest(t, e, http.MethodGet, "/v1/posts", nil, "")
	if total := resp.Data["pager"].(map[string]any)["total_rows"].(float64); total != 4 {
		t.Errorf("rejected drafts must not be stored, want 4 posts but got %v", total)
	}

	status, resp = doRequest(t, e, http.MethodPost, "/v1/post/comment", map[string]any{"post_id": "1", "text": "Shubho Bijoya!"}, "")
	if status != http.StatusOK || !strings.HasPrefix(resp.Data["id"].(string), "comment-") {
		t.Fatalf("comment: got %d %v", status, resp)
	}
	_, resp = doRequest(t, e, http.MethodGet, "/v1/post?id=1", nil, "")
	if resp.Data["comment_count"].(float64) != 19 || len(resp.Data["comments"].([]any)) != 3 {
		t.Errorf("want 19 comments counted and 3 listed but got %v", resp.Data["comment_count"])
	}

	status, resp = doRequest(t, e, http.MethodPost, "/v1/post/comment", map[string]any{"post_id": "nope", "text": "hi"}, "")
	if status != http.StatusNotFound || resp.Code != 30005 {
		t.Errorf("comment missing post: want 404/30005 but got %d/%d", status, resp.Code)
	}

	status, resp = doRequest(t, e, http.MethodDelete, "/v1/post?id=3", nil, "")
	if status != http.StatusForbidden || resp.Code != 10003 {
		t.Errorf("delete someone else's post: want 403/10003 but got %d/%d", status, resp.Code)
	}
	if status, _ = doRequest(t, e, http.MethodGet, "/v1/post?id=3", nil, ""); status != http.StatusOK {
		t.Errorf("refused delete must keep the post, got %d", status)
	}
	status, resp = doRequest(t, e, http.MethodDelete, "/v1/post?id=nope", nil, "")
	if status != http.StatusNotFound || resp.Code != 30005 {
		t.Errorf("delete missing post: want 404/30005 but got %d/%d", status, resp.Code)
	}
	status, resp = doRequest(t, e, http.MethodDelete, "/v1/post?id="+id, nil, "")
	if status != http.StatusOK || resp.Code != 0 {
		t.Errorf("delete: want 200/0 but got %d/%d", status, resp.Code)
	}
	status, _ = doRequest(t, e, http.MethodGet, "/v1/post?id="+id, nil, "")
	if status != http.StatusNotFound {
		t.Errorf("deleted post: want 404 but got %d", status)
	}
}

func TestPostLike(t *testing.T) {
	e := newTestEngine(t)

	for i, expect := range []struct {
		status bool
		count  float64
	}{
		{true, 125},
		{false, 124},
	} {
		_, resp := doRequest(t, e, http.MethodPost, "/v1/post/like", map[string]any{"id": "1"}, "rakesh-adak")
		if resp.Data["status"] != expect.status || resp.Data["like_count"].(float64) != expect.count {
			t.Errorf("toggle %d: want %v/%v but got %v", i, expect.status, expect.count, resp.Data)
		}
	}

	doRequest(t, e, http.MethodPost, "/v1/post/like", map[string]any{"id": "2"}, "rakesh-adak")
	_, resp := doRequest(t, e, http.MethodGet, "/v1/post/like?id=2", nil, "rakesh-adak")
	if resp.Data["status"] != true {
		t.Error("want post 2 liked by rakesh-adak")
	}
	_, resp = doRequest(t, e, http.MethodGet, "/v1/post/like?id=2", nil, "")
	if resp.Data["status"] != false {
		t.Error("want post 2 not liked by the default user")
	}

	status, resp := doRequest(t, e, http.MethodPost, "/v1/post/like", map[string]any{"id": "nope"}, "")
	if status != http.StatusNotFound || resp.Code != 30005 {
		t.Errorf("like missing post: want 404/30005 but got %d/%d", status, resp.Code)
	}
	status, _ = doRequest(t, e, http.MethodPost, "/v1/post/like", map[string]any{}, "")
	if status != http.StatusBadRequest {
		t.Errorf("like without id: want 400 but got %d", status)
	}
}

func TestSharePost(t *testing.T) {
	e := newTestEngine(t)

	status, resp := doRequest(t, e, http.MethodPost, "/v1/post/share", map[string]any{"id": "3", "platform": "twitter"}, "")
	if status != http.StatusOK || resp.Data["share_count"].(float64) != 13 {
		t.Fatalf("share: got %d %v", status, resp.Data)
	}
	target := resp.Data["target"].(map[string]any)
	if !strings.HasPrefix(target["url"].(string), "https://twitter.com/intent/tweet?text=") {
		t.Errorf("unexpected target %v", target)
	}
	if link := resp.Data["link"]; link != "https://pujogallery.com/posts/3" {
		t.Errorf("unexpected link %v", link)
	}

	status, resp = doRequest(t, e, http.MethodPost, "/v1/post/share", map[string]any{"id": "3", "platform": "myspace"}, "")
	if status != http.StatusBadRequest || resp.Code != 10001 {
		t.Errorf("unknown platform: want 400/10001 but got %d/%d", status, resp.Code)
	}
	_, resp = doRequest(t, e, http.MethodGet, "/v1/post?id=3", nil, "")
	if resp.Data["share_count"].(float64) != 13 {
		t.Errorf("want share count untouched by a rejected share but got %v", resp.Data["share_count"])
	}
}

func TestVerifyUser(t *testing.T) {
	e := newTestEngine(t)

	status, resp := doRequest(t, e, http.MethodPost, "/v1/user/verify", map[string]any{"amount": 50}, "")
	if status != http.StatusBadRequest || resp.Code != 50001 {
		t.Errorf("small donation: want 400/50001 but got %d/%d", status, resp.Code)
	}
	_, resp = doRequest(t, e, http.MethodGet, "/v1/user/verification", nil, "")
	if resp.Data["verified"] != false {
		t.Error("want a rejected donation to leave the user unverified")
	}

	status, resp = doRequest(t, e, http.MethodPost, "/v1/user/verify", map[string]any{"amount": "750"}, "")
	if status != http.StatusOK || resp.Data["badge_tier"] != "diamond" {
		t.Fatalf("verify: got %d %v", status, resp.Data)
	}
	_, resp = doRequest(t, e, http.MethodGet, "/v1/post?id=1", nil, "")
	author := resp.Data["author"].(map[string]any)
	if author["verified"] != true || author["badge_tier"] != "diamond" {
		t.Errorf("want the user's posts restamped but got %v", author)
	}

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/badges", nil))
	var badges struct {
		Data []struct {
			Tier      string  `json:"tier"`
			Threshold float64 `json:"threshold"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &badges); err != nil {
		t.Fatal(err)
	}
	if len(badges.Data) != 6 || badges.Data[0].Tier != "standard" || badges.Data[5].Threshold != 1000 {
		t.Errorf("unexpected badge table %+v", badges.Data)
	}
}

func TestGetPostTags(t *testing.T) {
	e := newTestEngine(t)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/tags", nil))
	var tags struct {
		Code int `json:"code"`
		Data []struct {
			Tag      string `json:"tag"`
			QuoteNum int64  `json:"quote_num"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &tags); err != nil {
		t.Fatal(err)
	}
	if tags.Code != 0 || len(tags.Data) != 2 || tags.Data[0].Tag != "#DurgaPuja2025" || tags.Data[0].QuoteNum != 1 {
		t.Errorf("unexpected tags %+v", tags.Data)
	}
}

func TestSearch(t *testing.T) {
	e := newTestEngine(t)

	for _, data := range []struct {
		query  string
		expect []string
	}{
		{"query=dhak", []string{"3"}},
		{"query=PujoVibes&type=tag", []string{"1"}},
		{"query=rakesh-adak&type=author", []string{"3"}},
		{"query=nothing-like-this", nil},
	} {
		_, resp := doRequest(t, e, http.MethodGet, "/v1/search?"+data.query, nil, "")
		list := resp.Data["list"].([]any)
		if len(list) != len(data.expect) {
			t.Errorf("%s: want %d hits but got %d", data.query, len(data.expect), len(list))
			continue
		}
		for i, id := range data.expect {
			if got := list[i].(map[string]any)["id"]; got != id {
				t.Errorf("%s: want %s at %d but got %v", data.query, id, i, got)
			}
		}
	}
}

func newUploadRequest(t *testing.T, uploadType, contentType string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if err := mw.WriteField("type", uploadType); err != nil {
		t.Fatal(err)
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="pandal.png"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatal(err)
	}
	part.Write(content)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/upload", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadAttachment(t *testing.T) {
	e := newTestEngine(t)

	status, resp := serve(t, e, newUploadRequest(t, "image", "image/png", []byte("png")))
	if status != http.StatusOK || resp.Data["content"] != "data:image/png;base64,cG5n" {
		t.Errorf("upload: got %d %v", status, resp.Data)
	}

	status, resp = serve(t, e, newUploadRequest(t, "video", "image/png", []byte("png")))
	if status != http.StatusBadRequest || resp.Code != 60002 {
		t.Errorf("mismatched type: want 400/60002 but got %d/%d", status, resp.Code)
	}

	status, resp = serve(t, e, newUploadRequest(t, "image", "image/png", bytes.Repeat([]byte("x"), 2048)))
	if status != http.StatusRequestEntityTooLarge || resp.Code != 60003 {
		t.Errorf("too large: want 413/60003 but got %d/%d", status, resp.Code)
	}

	_, resp = doRequest(t, e, http.MethodGet, "/v1/upload/status", nil, "")
	if resp.Data["uploading"] != false {
		t.Error("want no upload in flight")
	}
}

func TestFormatText(t *testing.T) {
	e := newTestEngine(t)

	_, resp := doRequest(t, e, http.MethodPost, "/v1/compose/format", map[string]any{
		"command": "bold",
		"text":    "Shubho Mahalaya",
		"start":   0,
		"end":     6,
	}, "")
	if resp.Data["text"] != "**Shubho** Mahalaya" {
		t.Errorf("bold: got %v", resp.Data)
	}

	status, resp := doRequest(t, e, http.MethodPost, "/v1/compose/format", map[string]any{"command": "blink", "text": "x"}, "")
	if status != http.StatusBadRequest || resp.Code != 10001 {
		t.Errorf("unknown command: want 400/10001 but got %d/%d", status, resp.Code)
	}
}

func TestDebugVarsAndFallbacks(t *testing.T) {
	e := newTestEngine(t)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/vars", nil))
	if w.Code != http.StatusOK {
		t.Errorf("debug vars from a whitelisted host: want 200 but got %d", w.Code)
	}

	conf.ServerSetting.DebugWhiteList = []string{"10.0.0.1"}
	w = httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/vars", nil))
	if w.Code != http.StatusForbidden {
		t.Errorf("debug vars from another host: want 403 but got %d", w.Code)
	}

	status, resp := doRequest(t, e, http.MethodGet, "/v2/nothing", nil, "")
	if status != http.StatusNotFound || resp.Code != 404 {
		t.Errorf("unknown route: want 404 but got %d/%d", status, resp.Code)
	}
	status, _ = doRequest(t, e, http.MethodPut, "/v1/posts", nil, "")
	if status != http.StatusMethodNotAllowed {
		t.Errorf("wrong method: want 405 but got %d", status)
	}
}
