package services

import (
	"testing"

	"github.com/luxeestates/luxegate-go/internal/domain/entities/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSummariesOnly(t *testing.T) {
	env := newTestEnv(t)

	summaries := env.catalog.List(false)
	require.Len(t, summaries, 3)
	assert.Equal(t, "p1", summaries[0].ID)
	assert.Equal(t, []string{"3 BHK", "4 BHK", "Penthouse"}, summaries[0].ConfigurationTypes)
}

func TestListFeaturedFilter(t *testing.T) {
	env := newTestEnv(t)

	featured := env.catalog.List(true)
	require.Len(t, featured, 2)
	for _, s := range featured {
		assert.True(t, s.IsFeatured)
	}
}

func TestPublishDefaults(t *testing.T) {
	env := newTestEnv(t)

	project, err := env.catalog.Publish(PublishRequest{
		Name:     "Lakeside Enclave",
		Location: "Powai, Mumbai",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, project.ID)
	assert.NotEqual(t, "p1", project.ID)
	assert.Equal(t, "Price on Request", project.StartingPrice)
	assert.NotEmpty(t, project.Image)
	assert.Empty(t, project.Amenities)
	assert.NotNil(t, project.Configurations)
	assert.Empty(t, project.Configurations)
	assert.False(t, project.IsFeatured)

	// New project sits at the head of the catalog
	projects := env.state.GetCatalog()
	require.Len(t, projects, 4)
	assert.Equal(t, project.ID, projects[0].ID)
}

func TestPublishNormalizesAmenities(t *testing.T) {
	env := newTestEnv(t)

	project, err := env.catalog.Publish(PublishRequest{
		Name:      "Hilltop Greens",
		Location:  "Lonavala",
		Amenities: " Pool , Gym,,Clubhouse ",
		Configurations: []catalog.Configuration{
			{Type: "2 BHK", Size: "900 Sq. Ft.", Price: "₹ 75 L"},
		},
		IsFeatured: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Pool", "Gym", "Clubhouse"}, project.Amenities)
	assert.True(t, project.IsFeatured)
	assert.Len(t, project.Configurations, 1)
}

func TestPublishValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.Publish(PublishRequest{Location: "Pune"})
	require.ErrorIs(t, err, ErrInvalidProject)

	_, err = env.catalog.Publish(PublishRequest{Name: "No Location"})
	require.ErrorIs(t, err, ErrInvalidProject)

	assert.Len(t, env.state.GetCatalog(), 3, "failed publishes leave the catalog alone")
}

func TestPublishSurvivesRestart(t *testing.T) {
	env := newTestEnv(t)

	project, err := env.catalog.Publish(PublishRequest{Name: "Restart Residency", Location: "Surat"})
	require.NoError(t, err)

	state := env.reinitialize(t)
	projects := state.GetCatalog()
	require.Len(t, projects, 4)
	assert.Equal(t, project.ID, projects[0].ID)
}

func TestGetDetail(t *testing.T) {
	env := newTestEnv(t)

	project, found := env.catalog.GetDetail("p3")
	require.True(t, found)
	assert.Equal(t, "The Cobalt Tower", project.Name)
	assert.NotEmpty(t, project.Description)

	_, found = env.catalog.GetDetail("nope")
	assert.False(t, found)
}
