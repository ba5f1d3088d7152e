package appointment

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebase/hospital-portal/internal/flash"
	"github.com/carebase/hospital-portal/internal/model"
	appointmentsvc "github.com/carebase/hospital-portal/internal/service/appointment"
	"github.com/carebase/hospital-portal/internal/session"
	"github.com/carebase/hospital-portal/internal/view"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAppointmentRepo struct {
	created []*model.Appointment
}

func (r *fakeAppointmentRepo) Create(_ context.Context, appointment *model.Appointment) error {
	stored := *appointment
	r.created = append(r.created, &stored)
	return nil
}

func (r *fakeAppointmentRepo) ListForOwner(_ context.Context, ownerID uuid.UUID) ([]*model.Appointment, error) {
	var out []*model.Appointment
	for _, a := range r.created {
		if a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	return out, nil
}

// newTestEngine mounts the handler behind a stub guard that injects identity
// when non-nil and leaves the request anonymous otherwise.
func newTestEngine(t *testing.T, identity *session.Identity) (*gin.Engine, *fakeAppointmentRepo) {
	t.Helper()

	repo := &fakeAppointmentRepo{}
	handler := NewHandler(appointmentsvc.NewService(repo))

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

func bookForm(date string) url.Values {
	return url.Values{
		"patient_name":     {"John Doe"},
		"patient_email":    {"john@example.test"},
		"doctor":           {"Dr. Smith"},
		"appointment_date": {date},
		"reason":           {"checkup"},
	}
}

func TestBookSuccess(t *testing.T) {
	owner := &session.Identity{AccountID: uuid.New(), Name: "Alice"}
	engine, repo := newTestEngine(t, owner)

	for _, date := range []string{"2025-03-10", "2025-03-10T14:30"} {
		t.Run(date, func(t *testing.T) {
			w := postForm(engine, "/book", bookForm(date))

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, "/dashboard", w.Header().Get("Location"))

			notice := flashMessage(t, w)
			require.NotNil(t, notice)
			assert.Equal(t, "Appointment booked!", notice.Message)
		})
	}

	require.Len(t, repo.created, 2)
	assert.Equal(t, owner.AccountID, repo.created[0].OwnerID)
}

func TestBookInvalidDate(t *testing.T) {
	owner := &session.Identity{AccountID: uuid.New(), Name: "Alice"}
	engine, repo := newTestEngine(t, owner)

	w := postForm(engine, "/book", bookForm("10-03-2025"))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/book", w.Header().Get("Location"))

	notice := flashMessage(t, w)
	require.NotNil(t, notice)
	assert.Equal(t, "Invalid date format. Use YYYY-MM-DD or YYYY-MM-DDTHH:MM", notice.Message)
	assert.Empty(t, repo.created)
}

func TestBookMissingField(t *testing.T) {
	owner := &session.Identity{AccountID: uuid.New(), Name: "Alice"}
	engine, repo := newTestEngine(t, owner)

	form := bookForm("2025-03-10")
	form.Set("doctor", "")
	w := postForm(engine, "/book", form)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/book", w.Header().Get("Location"))

	notice := flashMessage(t, w)
	require.NotNil(t, notice)
	assert.Equal(t, "Please fill required fields", notice.Message)
	assert.Empty(t, repo.created)
}

func TestBookAnonymous(t *testing.T) {
	engine, repo := newTestEngine(t, nil)

	w := postForm(engine, "/book", bookForm("2025-03-10"))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Empty(t, repo.created, "anonymous request must not write")
}

func TestDashboardListsOwnRecordsOnly(t *testing.T) {
	owner := &session.Identity{AccountID: uuid.New(), Name: "Alice"}
	engine, repo := newTestEngine(t, owner)

	w := postForm(engine, "/book", bookForm("2025-03-10"))
	require.Equal(t, http.StatusSeeOther, w.Code)

	repo.created = append(repo.created, &model.Appointment{
		PatientName: "Other Patient",
		OwnerID:     uuid.New(),
	})

	page := httptest.NewRecorder()
	engine.ServeHTTP(page, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusOK, page.Code)
	body := page.Body.String()
	assert.Contains(t, body, "John Doe")
	assert.NotContains(t, body, "Other Patient", "another owner's records must not render")
}

func TestDashboardEmpty(t *testing.T) {
	owner := &session.Identity{AccountID: uuid.New(), Name: "Alice"}
	engine, _ := newTestEngine(t, owner)

	page := httptest.NewRecorder()
	engine.ServeHTTP(page, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), "No appointments yet.")
}
