package services

import (
	"path/filepath"
	"testing"

	"github.com/luxeestates/luxegate-go/internal/infrastructure/media"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/messaging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/observability/logging"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/persistence/database"
	"github.com/luxeestates/luxegate-go/internal/infrastructure/persistence/store"
	"github.com/stretchr/testify/require"
)

// testEnv bundles a fully wired service graph over a throwaway store.
type testEnv struct {
	db      *database.DB
	store   *store.Store
	state   *StateService
	gating  *GatingService
	capture *CaptureService
	auth    *AuthService
	catalog *CatalogService
	export  *ExportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := logging.NewTestLogger()

	db, err := database.NewConnection("sqlite3", filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	st, err := store.New(db, logger)
	require.NoError(t, err)

	broadcaster := messaging.NewSessionBroadcaster(logger)
	leadStream := messaging.NewLeadStreamBroadcaster(logger)
	images := media.NewImageProcessor(t.TempDir())

	state := NewStateService(st, logger)
	state.Initialize()

	return &testEnv{
		db:      db,
		store:   st,
		state:   state,
		gating:  NewGatingService(),
		capture: NewCaptureService(state, broadcaster, leadStream, nil, logger),
		auth:    NewAuthService(state, broadcaster, logger),
		catalog: NewCatalogService(state, images, broadcaster, logger),
		export:  NewExportService(state, logger),
	}
}

// reinitialize builds a fresh StateService over the same store, simulating a
// process restart against persisted data.
func (e *testEnv) reinitialize(t *testing.T) *StateService {
	t.Helper()

	state := NewStateService(e.store, logging.NewTestLogger())
	state.Initialize()
	return state
}

// validCapture is a well-formed enquiry targeting the first seed project.
func validCapture() CaptureRequest {
	return CaptureRequest{
		Name:             "Asha",
		Phone:            "9820012345",
		Email:            "asha@example.com",
		BuyingFor:        "Self",
		Budget:           "₹ 50L - ₹ 80L",
		InterestedConfig: "2 BHK",
		ProjectID:        "p1",
	}
}
