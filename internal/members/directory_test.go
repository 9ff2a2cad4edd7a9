package members

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sadaka/charity-ledger/internal/ledgererror"
	"sadaka/charity-ledger/internal/models"
)

func TestUpsertGeneratesMissingID(t *testing.T) {
	d := New(nil)

	require.NoError(t, d.Upsert("Ali Hassan", models.Member{
		Group:  models.GroupBrother,
		Phone:  "030-1234",
		Joined: "2024-01-05",
	}))

	p, err := d.Get("Ali Hassan")
	require.NoError(t, err)
	assert.Len(t, p.ID, 8)
	assert.Equal(t, models.GroupBrother, p.Group)

	// Upsert fully replaces the profile, keeping an explicit id.
	require.NoError(t, d.Upsert("Ali Hassan", models.Member{ID: "abc123", Group: models.GroupBrother}))
	p, err = d.Get("Ali Hassan")
	require.NoError(t, err)
	assert.Equal(t, "abc123", p.ID)
	assert.Empty(t, p.Phone)
}

func TestUpsertRequiresName(t *testing.T) {
	d := New(nil)
	var invalid *ledgererror.InvalidRecordError
	require.ErrorAs(t, d.Upsert("  ", models.Member{}), &invalid)
	assert.Equal(t, 0, d.Count())
}

func TestRenamePreservesAttributes(t *testing.T) {
	d := New(map[string]models.Member{
		"Ali Hassan": {ID: "m1", Group: models.GroupBrother, Phone: "030-1234", Joined: "2023-05-01"},
		"Fatima":     {ID: "m2", Group: models.GroupSister},
	})

	require.NoError(t, d.Rename("Ali Hassan", "Ali H. Hassan"))

	_, err := d.Get("Ali Hassan")
	var notFound *ledgererror.NotFoundError
	require.ErrorAs(t, err, &notFound)

	p, err := d.Get("Ali H. Hassan")
	require.NoError(t, err)
	assert.Equal(t, "m1", p.ID)
	assert.Equal(t, "030-1234", p.Phone)
	assert.Equal(t, "2023-05-01", p.Joined)
}

func TestRenameRejectsCollisionsAndUnknowns(t *testing.T) {
	d := New(map[string]models.Member{
		"Ali":    {ID: "m1", Group: models.GroupBrother},
		"Fatima": {ID: "m2", Group: models.GroupSister},
	})

	var dup *ledgererror.DuplicateNameError
	require.ErrorAs(t, d.Rename("Ali", "Fatima"), &dup)

	var notFound *ledgererror.NotFoundError
	require.ErrorAs(t, d.Rename("Nope", "Anything"), &notFound)

	assert.Equal(t, 2, d.Count())
}

func TestRemove(t *testing.T) {
	d := New(map[string]models.Member{"Ali": {ID: "m1"}})

	require.NoError(t, d.Remove("Ali"))
	assert.Equal(t, 0, d.Count())

	var notFound *ledgererror.NotFoundError
	require.ErrorAs(t, d.Remove("Ali"), &notFound)
}

func TestNamesFiltersByGroupAndSorts(t *testing.T) {
	d := New(map[string]models.Member{
		"Omar":   {ID: "m1", Group: models.GroupBrother},
		"Ali":    {ID: "m2", Group: models.GroupBrother},
		"Fatima": {ID: "m3", Group: models.GroupSister},
	})

	assert.Equal(t, []string{"Ali", "Fatima", "Omar"}, d.Names(""))
	assert.Equal(t, []string{"Ali", "Omar"}, d.Names(models.GroupBrother))
	assert.Equal(t, []string{"Fatima"}, d.Names(models.GroupSister))
}
