package view

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-coffee-freezer/models"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer("Bean Vault", "1.2.3")
	require.NoError(t, err)
	return r
}

func TestNewRenderer_ParsesAllPages(t *testing.T) {
	r := newTestRenderer(t)

	for _, page := range pages {
		assert.Contains(t, r.templates, page)
	}
}

func TestRender_Index(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()

	inventory := models.Inventory{
		ActiveBags:   []models.Bag{{ID: 7, Name: "Kochere", Roaster: "Tim Wendelboe", Grams: 250}},
		InStockVials: []models.Vial{{ID: 3, Name: "Huila", Vials: 4, GramsPerVial: 18}},
		PastVials:    []models.Vial{{ID: 1, Name: "Yirgacheffe <b>", Vials: 0}},
	}

	err := r.Render(rec, http.StatusOK, PageIndex, "", inventory)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "<title>Bean Vault</title>")
	assert.Contains(t, body, "version 1.2.3")
	assert.Contains(t, body, `href="/freeze_bag/7"`)
	assert.Contains(t, body, `action="/consume_vials/3"`)
	assert.Contains(t, body, "Yirgacheffe &lt;b&gt;")
	assert.NotContains(t, body, "Yirgacheffe <b>")
}

func TestRender_EmptyIndex(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()

	require.NoError(t, r.Render(rec, http.StatusOK, PageIndex, "", models.Inventory{}))

	body := rec.Body.String()
	assert.Contains(t, body, "No bags waiting to be frozen.")
	assert.Contains(t, body, "The freezer is empty.")
	assert.Contains(t, body, "Nothing finished yet.")
}

func TestRender_FormShowsValuesAndErrors(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()

	form := Form{
		Action: "/add_bag",
		Submit: "Add bag",
		Cancel: "/",
		Values: map[string]string{"name": "Kochere", "grams": "abc"},
		Errors: map[string]string{"grams": "must be an integer"},
	}

	err := r.Render(rec, http.StatusUnprocessableEntity, PageBagForm, "Add bag", form)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="Kochere"`)
	assert.Contains(t, body, `value="abc"`)
	assert.Contains(t, body, "Grams must be an integer")
	assert.Contains(t, body, `action="/add_bag"`)
	assert.Contains(t, body, "<title>Add bag · Bean Vault</title>")
}

func TestRender_VialViewWithoutSourceBag(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()

	vial := models.Vial{ID: 9, Name: "Huila", Vials: 0}
	require.NoError(t, r.Render(rec, http.StatusOK, PageVialView, vial.Name, vial))

	body := rec.Body.String()
	assert.Contains(t, body, "entered by hand")
	assert.NotContains(t, body, "/unfreeze_vial/9")
	assert.NotContains(t, body, "/consume_vials/9")
}

func TestRender_VialViewWithSourceBag(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()

	bagID := int64(4)
	vial := models.Vial{ID: 9, BagID: &bagID, Name: "Huila", Vials: 2}
	require.NoError(t, r.Render(rec, http.StatusOK, PageVialView, vial.Name, vial))

	body := rec.Body.String()
	assert.Contains(t, body, `href="/view_bag/4"`)
	assert.Contains(t, body, `href="/unfreeze_vial/9"`)
	assert.Contains(t, body, `action="/consume_vials/9"`)
}

func TestRender_Confirm(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()

	data := Confirm{Message: "Delete bag Kochere?", Action: "/delete_bag/7", Submit: "Delete", Cancel: "/view_bag/7"}
	require.NoError(t, r.Render(rec, http.StatusOK, PageConfirm, "Delete bag", data))

	body := rec.Body.String()
	assert.Contains(t, body, `method="post" action="/delete_bag/7"`)
	assert.Contains(t, body, "Delete bag Kochere?")
}

func TestRender_UnknownPage(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()

	err := r.Render(rec, http.StatusOK, "missing.gohtml", "", nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPage))
	assert.Empty(t, rec.Body.String())
}

func TestRender_ExecutionErrorWritesNothing(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()

	// the index page dereferences fields a string does not have
	err := r.Render(rec, http.StatusOK, PageIndex, "", "not an inventory")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExecutingTemplate))
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, rec.Header().Get("Content-Type"))
}

func TestBagValues(t *testing.T) {
	values := BagValues(models.Bag{Name: "Kochere", Grams: 250, TargetFreezeDate: "2026-01-02"})

	assert.Equal(t, "Kochere", values["name"])
	assert.Equal(t, "250", values["grams"])
	assert.Equal(t, "2026-01-02", values["target_freeze_date"])
}

func TestVialValues(t *testing.T) {
	values := VialValues(models.Vial{Name: "Huila", Vials: 4, GramsPerVial: 18, ActualFreezeDate: "2026-01-03"})

	assert.Equal(t, "Huila", values["name"])
	assert.Equal(t, "4", values["vials"])
	assert.Equal(t, "18", values["grams_per_vial"])
	assert.Equal(t, "2026-01-03", values["actual_freeze_date"])
}
