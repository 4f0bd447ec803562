package registration_test

import (
	"testing"

	"transferdesk/internal/registration"
	registrationerrors "transferdesk/internal/registration/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestServiceEntryListLifecycle(t *testing.T) {
	form := registration.FormState{PastServices: []registration.ServiceEntry{{}}}

	registration.AddServiceEntry(&form)
	registration.AddServiceEntry(&form)
	require.Len(t, form.PastServices, 3)

	require.NoError(t, registration.UpdateServiceEntry(&form, 1, registration.EntryPatch{
		Institution: strptr("Taluk Hospital Hunsur"),
	}))

	require.NoError(t, registration.RemoveServiceEntry(&form, 0))
	require.Len(t, form.PastServices, 2)

	// Relative order survives removal.
	assert.Equal(t, "Taluk Hospital Hunsur", form.PastServices[0].Institution)
}

func TestRemoveServiceEntry_Guards(t *testing.T) {
	form := registration.FormState{PastServices: []registration.ServiceEntry{{}}}

	err := registration.RemoveServiceEntry(&form, 0)
	assert.ErrorIs(t, err, registrationerrors.ErrLastEntry)

	err = registration.RemoveServiceEntry(&form, 5)
	assert.ErrorIs(t, err, registrationerrors.ErrEntryIndexOutOfRange)

	assert.Len(t, form.PastServices, 1)
}

func TestUpdateServiceEntry_PositionFanOut(t *testing.T) {
	form := registration.FormState{PastServices: []registration.ServiceEntry{{}}}

	require.NoError(t, registration.UpdateServiceEntry(&form, 0, registration.EntryPatch{
		Position: &registration.PositionSelection{
			PostHeld:     "Staff Nurse",
			PostGroup:    "Group C",
			PostSubGroup: "Nursing",
		},
	}))

	entry := form.PastServices[0]
	assert.Equal(t, "Staff Nurse", entry.PostHeld)
	assert.Equal(t, "Group C", entry.PostGroup)
	assert.Equal(t, "Nursing", entry.PostSubGroup)

	require.NoError(t, registration.UpdateServiceEntry(&form, 0, registration.EntryPatch{
		ClearPosition: true,
	}))

	entry = form.PastServices[0]
	assert.Empty(t, entry.PostHeld)
	assert.Empty(t, entry.PostGroup)
	assert.Empty(t, entry.PostSubGroup)
}

func TestUpdateServiceEntry_TenureRecompute(t *testing.T) {
	form := registration.FormState{PastServices: []registration.ServiceEntry{{}}}

	require.NoError(t, registration.UpdateServiceEntry(&form, 0, registration.EntryPatch{
		FromDate: strptr("2020-01-15"),
	}))
	assert.Empty(t, form.PastServices[0].Tenure)

	require.NoError(t, registration.UpdateServiceEntry(&form, 0, registration.EntryPatch{
		ToDate: strptr("2023-07-15"),
	}))
	assert.Equal(t, "3 years 6 months", form.PastServices[0].Tenure)

	require.NoError(t, registration.UpdateServiceEntry(&form, 0, registration.EntryPatch{
		ToDate: strptr(""),
	}))
	assert.Empty(t, form.PastServices[0].Tenure)
}
