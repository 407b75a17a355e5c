package admin

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetify/booking-api/internal/model"
	"github.com/vetify/booking-api/internal/repository/memory"
	adminservice "github.com/vetify/booking-api/internal/service/admin"
	"github.com/vetify/booking-api/pkg/blob"
)

type noopBlobStore struct{}

func (noopBlobStore) Store(ctx context.Context, r io.Reader, hint, filename string) (*blob.FileReference, error) {
	return &blob.FileReference{Key: hint + "/" + filename}, nil
}

func (noopBlobStore) Delete(ctx context.Context, key string) error { return nil }

func (noopBlobStore) PresignURL(ctx context.Context, key string) (string, error) {
	return "https://files.example.com/" + key, nil
}

func setupHandler(t *testing.T) (*gin.Engine, *memory.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	svc := adminservice.NewService(
		store.Users(),
		store.Pets(),
		store.Appointments(),
		store.Services(),
		store.Veterinarians(),
		store.Schedules(),
		store.Documents(),
		noopBlobStore{},
	)

	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/admin"))
	return r, store
}

func TestListVeterinariansSpecialtyFilter(t *testing.T) {
	r, store := setupHandler(t)
	ctx := context.Background()

	require.NoError(t, store.Veterinarians().Create(ctx, &model.Veterinarian{Name: "Dr. Vega", Specialty: model.SpecialtyGeneral, IsActive: true}))
	require.NoError(t, store.Veterinarians().Create(ctx, &model.Veterinarian{Name: "Dr. Ruiz", Specialty: model.SpecialtySurgery, IsActive: true}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/admin/veterinarians", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dr. Vega")
	assert.Contains(t, w.Body.String(), "Dr. Ruiz")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/admin/veterinarians?specialty=surgery", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dr. Ruiz")
	assert.NotContains(t, w.Body.String(), "Dr. Vega")
}

func TestListVeterinariansRejectsUnknownSpecialty(t *testing.T) {
	r, _ := setupHandler(t)

	for _, specialty := range []string{"all", "bogus"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/admin/veterinarians?specialty="+specialty, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, "specialty %q is not a recognized filter", specialty)
		assert.Contains(t, w.Body.String(), "invalid specialty filter")
	}
}
