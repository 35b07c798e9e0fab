package flora

import (
	"testing"
	"time"

	"github.com/florarium/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthor() *models.UserModel {
	u := &models.UserModel{Username: "ann", Role: models.RoleCultivator}
	u.ID = "user-1"
	return u
}

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }

func TestBuildNew(t *testing.T) {
	now := time.Now()

	t.Run("default publishes as blossoming", func(t *testing.T) {
		f, err := buildNew(testAuthor(), &CreateFloraDTO{Title: "T", Text: "Hi"}, now)
		require.NoError(t, err)
		assert.Equal(t, models.FloraBlossoming, f.Status)
		require.NotNil(t, f.PublishedAt)
		assert.Equal(t, now, *f.PublishedAt)
		assert.Nil(t, f.SealedAt)
		require.NotNil(t, f.AuthorID)
		assert.Equal(t, "user-1", *f.AuthorID)
		assert.Equal(t, "ann", f.AuthorUsername)
	})

	t.Run("explicit sealed seals at birth", func(t *testing.T) {
		f, err := buildNew(testAuthor(), &CreateFloraDTO{Title: "T", Text: "Hi", Status: models.FloraSealed}, now)
		require.NoError(t, err)
		assert.Equal(t, models.FloraSealed, f.Status)
		require.NotNil(t, f.PublishedAt)
		require.NotNil(t, f.SealedAt)
		assert.Equal(t, now, *f.SealedAt)
	})

	t.Run("hidden is not reachable at creation", func(t *testing.T) {
		_, err := buildNew(testAuthor(), &CreateFloraDTO{Title: "T", Text: "Hi", Status: models.FloraHidden}, now)
		assert.ErrorIs(t, err, errModerationOnly)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := buildNew(testAuthor(), &CreateFloraDTO{Title: "T", Text: "Hi", Status: "wilted"}, now)
		assert.ErrorIs(t, err, errUnknownStatus)
	})
}

func TestApplyUpdate_Immutability(t *testing.T) {
	now := time.Now()
	published := now.Add(-time.Hour)

	tests := []struct {
		name    string
		flora   models.FloraModel
		dto     UpdateFloraDTO
		wantErr error
	}{
		{
			name:    "text change after publish rejected",
			flora:   models.FloraModel{Text: "Hi", PublishedAt: &published},
			dto:     UpdateFloraDTO{Text: strptr("Bye")},
			wantErr: errImmutableText,
		},
		{
			name:  "identical text after publish allowed",
			flora: models.FloraModel{Text: "Hi", PublishedAt: &published},
			dto:   UpdateFloraDTO{Text: strptr("Hi")},
		},
		{
			name:  "title edit after publish allowed",
			flora: models.FloraModel{Title: "T", Text: "Hi", PublishedAt: &published},
			dto:   UpdateFloraDTO{Title: strptr("T2")},
		},
		{
			name:  "text change before publish allowed",
			flora: models.FloraModel{Text: "Hi"},
			dto:   UpdateFloraDTO{Text: strptr("Bye")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := applyUpdate(&tt.flora, &tt.dto, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.dto.Title != nil {
				assert.Equal(t, *tt.dto.Title, tt.flora.Title)
			}
			if tt.dto.Text != nil {
				assert.Equal(t, *tt.dto.Text, tt.flora.Text)
			}
		})
	}
}

func TestApplyUpdate_Transitions(t *testing.T) {
	now := time.Now()

	t.Run("sealing stamps sealedAt and backfills publishedAt", func(t *testing.T) {
		f := models.FloraModel{Status: models.FloraBlossoming}
		err := applyUpdate(&f, &UpdateFloraDTO{Status: strptr(models.FloraSealed)}, now)
		require.NoError(t, err)
		assert.Equal(t, models.FloraSealed, f.Status)
		require.NotNil(t, f.SealedAt)
		require.NotNil(t, f.PublishedAt)
	})

	t.Run("sealing keeps an existing sealedAt", func(t *testing.T) {
		sealed := now.Add(-time.Hour)
		f := models.FloraModel{Status: models.FloraBlossoming, SealedAt: &sealed, PublishedAt: &sealed}
		err := applyUpdate(&f, &UpdateFloraDTO{Status: strptr(models.FloraSealed)}, now)
		require.NoError(t, err)
		assert.Equal(t, sealed, *f.SealedAt)
	})

	t.Run("sealed cannot return to blossoming", func(t *testing.T) {
		f := models.FloraModel{Status: models.FloraSealed}
		err := applyUpdate(&f, &UpdateFloraDTO{Status: strptr(models.FloraBlossoming)}, now)
		assert.ErrorIs(t, err, errSealedFinal)
	})

	t.Run("hidden is reserved for moderation", func(t *testing.T) {
		f := models.FloraModel{Status: models.FloraBlossoming}
		err := applyUpdate(&f, &UpdateFloraDTO{Status: strptr(models.FloraHidden)}, now)
		assert.ErrorIs(t, err, errModerationOnly)

		err = applyUpdate(&f, &UpdateFloraDTO{IsHidden: boolptr(true)}, now)
		assert.ErrorIs(t, err, errModerationOnly)
	})

	t.Run("blossoming backfills a missing publishedAt", func(t *testing.T) {
		f := models.FloraModel{Status: models.FloraBlossoming}
		err := applyUpdate(&f, &UpdateFloraDTO{Status: strptr(models.FloraBlossoming)}, now)
		require.NoError(t, err)
		require.NotNil(t, f.PublishedAt)
	})
}

func TestDeriveLineage(t *testing.T) {
	parentAuthor := "user-1"

	t.Run("child of a root", func(t *testing.T) {
		parent := models.FloraModel{
			AuthorID:       &parentAuthor,
			AuthorUsername: "ann",
		}
		parent.ID = "flora-root"
		child := models.FloraModel{}

		deriveLineage(&child, &parent)

		assert.Equal(t, 1, child.Lineage.Generation)
		require.NotNil(t, child.Lineage.ParentFloraID)
		assert.Equal(t, "flora-root", *child.Lineage.ParentFloraID)
		require.NotNil(t, child.Lineage.RootFloraID)
		assert.Equal(t, "flora-root", *child.Lineage.RootFloraID)

		require.Len(t, child.CoAuthors, 1)
		assert.Equal(t, "user-1", child.CoAuthors[0].UserID)
		assert.Equal(t, "ann", child.CoAuthors[0].Username)
		assert.Equal(t, 0, child.CoAuthors[0].Generation)
	})

	t.Run("grandchild inherits the root and the chain", func(t *testing.T) {
		root := "flora-root"
		parent := models.FloraModel{
			AuthorID:       &parentAuthor,
			AuthorUsername: "bob",
			Lineage: models.Lineage{
				Generation:  1,
				RootFloraID: &root,
			},
			CoAuthors: []models.CoAuthor{{UserID: "user-0", Username: "ann", Generation: 0}},
		}
		parent.ID = "flora-mid"
		child := models.FloraModel{}

		deriveLineage(&child, &parent)

		assert.Equal(t, 2, child.Lineage.Generation)
		assert.Equal(t, "flora-root", *child.Lineage.RootFloraID)
		require.Len(t, child.CoAuthors, 2)
		assert.Equal(t, "ann", child.CoAuthors[0].Username)
		assert.Equal(t, "bob", child.CoAuthors[1].Username)
	})

	t.Run("anonymized parent author carries the flag", func(t *testing.T) {
		parent := models.FloraModel{
			AuthorID:           nil,
			AuthorUsername:     "Anonymous",
			IsAuthorAnonymized: true,
		}
		parent.ID = "flora-x"
		child := models.FloraModel{}

		deriveLineage(&child, &parent)

		require.Len(t, child.CoAuthors, 1)
		assert.Empty(t, child.CoAuthors[0].UserID)
		assert.True(t, child.CoAuthors[0].IsAnonymized)
	})
}
