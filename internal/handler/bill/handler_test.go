package bill

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebase/hospital-portal/internal/flash"
	"github.com/carebase/hospital-portal/internal/model"
	billsvc "github.com/carebase/hospital-portal/internal/service/bill"
	"github.com/carebase/hospital-portal/internal/session"
	"github.com/carebase/hospital-portal/internal/view"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeBillRepo struct {
	created []*model.Bill
}

func (r *fakeBillRepo) Create(_ context.Context, bill *model.Bill) error {
	for _, b := range r.created {
		if b.BillNumber == bill.BillNumber {
			return model.ErrDuplicateNumber
		}
	}
	stored := *bill
	stored.IssuedAt = time.Now()
	r.created = append(r.created, &stored)
	return nil
}

func (r *fakeBillRepo) ListForOwner(_ context.Context, ownerID uuid.UUID) ([]*model.Bill, error) {
	var out []*model.Bill
	for _, b := range r.created {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func newTestEngine(t *testing.T, identity *session.Identity) (*gin.Engine, *fakeBillRepo) {
	t.Helper()

	repo := &fakeBillRepo{}
	handler := NewHandler(billsvc.NewService(repo))

	engine := gin.New()
	tmpl, err := view.Templates()
	require.NoError(t, err)
	engine.SetHTMLTemplate(tmpl)

	group := engine.Group("/")
	group.Use(func(c *gin.Context) {
		if identity != nil {
			session.IntoContext(c, identity)
		}
		c.Next()
	})
	handler.RegisterRoutes(group)

	return engine, repo
}

func postForm(engine *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func flashMessage(t *testing.T, w *httptest.ResponseRecorder) *flash.Notice {
	t.Helper()

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name != "hp_flash" || cookie.Value == "" {
			continue
		}
		encoded, err := url.QueryUnescape(cookie.Value)
		require.NoError(t, err)
		payload, err := base64.URLEncoding.DecodeString(encoded)
		require.NoError(t, err)
		var notice flash.Notice
		require.NoError(t, json.Unmarshal(payload, &notice))
		return &notice
	}
	return nil
}

func billForm() url.Values {
	return url.Values{
		"bill_number":   {"B-1001"},
		"patient_name":  {"John Doe"},
		"patient_email": {"john@example.test"},
		"amount":        {"150.50"},
		"description":   {"consultation"},
	}
}

func TestAddSuccess(t *testing.T) {
	owner := &session.Identity{AccountID: uuid.New(), Name: "Alice"}
	engine, repo := newTestEngine(t, owner)

	w := postForm(engine, "/bills/add", billForm())

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/bills", w.Header().Get("Location"))

	notice := flashMessage(t, w)
	require.NotNil(t, notice)
	assert.Equal(t, "Bill saved.", notice.Message)

	require.Len(t, repo.created, 1)
	assert.Equal(t, 150.50, repo.created[0].Amount)
	assert.Equal(t, owner.AccountID, repo.created[0].OwnerID)
}

func TestAddInvalidAmount(t *testing.T) {
	owner := &session.Identity{AccountID: uuid.New(), Name: "Alice"}
	engine, repo := newTestEngine(t, owner)

	form := billForm()
	form.Set("amount", "abc")
	w := postForm(engine, "/bills/add", form)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/bills/add", w.Header().Get("Location"))

	notice := flashMessage(t, w)
	require.NotNil(t, notice)
	assert.Equal(t, "Invalid amount", notice.Message)
	assert.Empty(t, repo.created)
}

func TestAddDuplicateNumber(t *testing.T) {
	owner := &session.Identity{AccountID: uuid.New(), Name: "Alice"}
	engine, repo := newTestEngine(t, owner)

	postForm(engine, "/bills/add", billForm())
	w := postForm(engine, "/bills/add", billForm())

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/bills/add", w.Header().Get("Location"))

	notice := flashMessage(t, w)
	require.NotNil(t, notice)
	assert.Equal(t, "Bill number already in use", notice.Message)
	assert.Len(t, repo.created, 1)
}

func TestAddAnonymous(t *testing.T) {
	engine, repo := newTestEngine(t, nil)

	w := postForm(engine, "/bills/add", billForm())

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Empty(t, repo.created)
}

func TestListOwnRecordsOnly(t *testing.T) {
	owner := &session.Identity{AccountID: uuid.New(), Name: "Alice"}
	engine, repo := newTestEngine(t, owner)

	postForm(engine, "/bills/add", billForm())
	repo.created = append(repo.created, &model.Bill{
		BillNumber:  "B-9999",
		PatientName: "Other Patient",
		IssuedAt:    time.Now(),
		OwnerID:     uuid.New(),
	})

	page := httptest.NewRecorder()
	engine.ServeHTTP(page, httptest.NewRequest(http.MethodGet, "/bills", nil))

	assert.Equal(t, http.StatusOK, page.Code)
	body := page.Body.String()
	assert.Contains(t, body, "B-1001")
	assert.Contains(t, body, "150.50")
	assert.NotContains(t, body, "B-9999")
}
