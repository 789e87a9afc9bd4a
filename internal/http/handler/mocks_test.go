package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"github.com/geniusdynamics/alumate-sub010/internal/http/middleware"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/service"
	"github.com/geniusdynamics/alumate-sub010/internal/transition"
)

var (
	member    = model.Actor{ID: 100, Roles: model.NewRoleSet(model.RoleMember)}
	moderator = model.Actor{ID: 900, Roles: model.NewRoleSet(model.RoleMember, model.RoleModerator)}
)

// newRouter authenticates every request as the given actor.
func newRouter(as *model.Actor) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if as != nil {
			middleware.SetActor(c, *as)
		}
		c.Next()
	})
	return r
}

func do(r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

type mockConnectionService struct {
	requestFn func(ctx context.Context, actor model.Actor, targetID int64, message *string) (*model.Connection, error)
	acceptFn  func(ctx context.Context, actor model.Actor, id int64) (*model.Connection, error)
	declineFn func(ctx context.Context, actor model.Actor, id int64) (*model.Connection, error)
	removeFn  func(ctx context.Context, actor model.Actor, id int64) error
	statusFn  func(ctx context.Context, actor model.Actor, otherID int64) (*model.Connection, error)
}

func (m *mockConnectionService) Request(ctx context.Context, actor model.Actor, targetID int64, message *string) (*model.Connection, error) {
	if m.requestFn != nil {
		return m.requestFn(ctx, actor, targetID, message)
	}
	return &model.Connection{}, nil
}

func (m *mockConnectionService) Accept(ctx context.Context, actor model.Actor, id int64) (*model.Connection, error) {
	if m.acceptFn != nil {
		return m.acceptFn(ctx, actor, id)
	}
	return &model.Connection{}, nil
}

func (m *mockConnectionService) Decline(ctx context.Context, actor model.Actor, id int64) (*model.Connection, error) {
	if m.declineFn != nil {
		return m.declineFn(ctx, actor, id)
	}
	return &model.Connection{}, nil
}

func (m *mockConnectionService) Remove(ctx context.Context, actor model.Actor, id int64) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, actor, id)
	}
	return nil
}

func (m *mockConnectionService) Status(ctx context.Context, actor model.Actor, otherID int64) (*model.Connection, error) {
	if m.statusFn != nil {
		return m.statusFn(ctx, actor, otherID)
	}
	return nil, nil
}

type mockRegistrationService struct {
	registerFn   func(ctx context.Context, actor model.Actor, eventID int64) (*model.EventRegistration, error)
	unregisterFn func(ctx context.Context, actor model.Actor, eventID int64) error
}

func (m *mockRegistrationService) Register(ctx context.Context, actor model.Actor, eventID int64) (*model.EventRegistration, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, actor, eventID)
	}
	return &model.EventRegistration{}, nil
}

func (m *mockRegistrationService) Unregister(ctx context.Context, actor model.Actor, eventID int64) error {
	if m.unregisterFn != nil {
		return m.unregisterFn(ctx, actor, eventID)
	}
	return nil
}

type mockFavoriteService struct {
	addFn    func(ctx context.Context, actor model.Actor, eventID int64) (*model.EventFavorite, error)
	removeFn func(ctx context.Context, actor model.Actor, eventID int64) error
}

func (m *mockFavoriteService) Add(ctx context.Context, actor model.Actor, eventID int64) (*model.EventFavorite, error) {
	if m.addFn != nil {
		return m.addFn(ctx, actor, eventID)
	}
	return &model.EventFavorite{}, nil
}

func (m *mockFavoriteService) Remove(ctx context.Context, actor model.Actor, eventID int64) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, actor, eventID)
	}
	return nil
}

type mockSavedJobService struct {
	saveFn   func(ctx context.Context, actor model.Actor, jobID int64) (*model.SavedJob, error)
	unsaveFn func(ctx context.Context, actor model.Actor, jobID int64) error
}

func (m *mockSavedJobService) Save(ctx context.Context, actor model.Actor, jobID int64) (*model.SavedJob, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, actor, jobID)
	}
	return &model.SavedJob{}, nil
}

func (m *mockSavedJobService) Unsave(ctx context.Context, actor model.Actor, jobID int64) error {
	if m.unsaveFn != nil {
		return m.unsaveFn(ctx, actor, jobID)
	}
	return nil
}

type mockCongratulationService struct {
	addFn     func(ctx context.Context, actor model.Actor, celebrationID int64, message *string) (*service.Congratulated, error)
	removeFn  func(ctx context.Context, actor model.Actor, celebrationID int64) (bool, int64, error)
	recountFn func(ctx context.Context, actor model.Actor, celebrationID int64) (model.Recount, error)
}

func (m *mockCongratulationService) Add(ctx context.Context, actor model.Actor, celebrationID int64, message *string) (*service.Congratulated, error) {
	if m.addFn != nil {
		return m.addFn(ctx, actor, celebrationID, message)
	}
	return &service.Congratulated{}, nil
}

func (m *mockCongratulationService) Remove(ctx context.Context, actor model.Actor, celebrationID int64) (bool, int64, error) {
	if m.removeFn != nil {
		return m.removeFn(ctx, actor, celebrationID)
	}
	return true, 0, nil
}

func (m *mockCongratulationService) Recount(ctx context.Context, actor model.Actor, celebrationID int64) (model.Recount, error) {
	if m.recountFn != nil {
		return m.recountFn(ctx, actor, celebrationID)
	}
	return model.Recount{ID: celebrationID}, nil
}

type mockFundraiserService struct {
	createFn           func(ctx context.Context, actor model.Actor, campaignID int64, draft transition.FundraiserDraft) (*model.PeerFundraiser, error)
	pauseFn            func(ctx context.Context, actor model.Actor, id int64) (*model.PeerFundraiser, error)
	resumeFn           func(ctx context.Context, actor model.Actor, id int64) (*model.PeerFundraiser, error)
	completeFn         func(ctx context.Context, actor model.Actor, id int64) (*model.PeerFundraiser, error)
	completeDonationFn func(ctx context.Context, actor model.Actor, donationID int64) (*service.DonationApplied, error)
}

func (m *mockFundraiserService) Create(ctx context.Context, actor model.Actor, campaignID int64, draft transition.FundraiserDraft) (*model.PeerFundraiser, error) {
	if m.createFn != nil {
		return m.createFn(ctx, actor, campaignID, draft)
	}
	return &model.PeerFundraiser{}, nil
}

func (m *mockFundraiserService) Pause(ctx context.Context, actor model.Actor, id int64) (*model.PeerFundraiser, error) {
	if m.pauseFn != nil {
		return m.pauseFn(ctx, actor, id)
	}
	return &model.PeerFundraiser{}, nil
}

func (m *mockFundraiserService) Resume(ctx context.Context, actor model.Actor, id int64) (*model.PeerFundraiser, error) {
	if m.resumeFn != nil {
		return m.resumeFn(ctx, actor, id)
	}
	return &model.PeerFundraiser{}, nil
}

func (m *mockFundraiserService) Complete(ctx context.Context, actor model.Actor, id int64) (*model.PeerFundraiser, error) {
	if m.completeFn != nil {
		return m.completeFn(ctx, actor, id)
	}
	return &model.PeerFundraiser{}, nil
}

func (m *mockFundraiserService) CompleteDonation(ctx context.Context, actor model.Actor, donationID int64) (*service.DonationApplied, error) {
	if m.completeDonationFn != nil {
		return m.completeDonationFn(ctx, actor, donationID)
	}
	return &service.DonationApplied{}, nil
}

type mockModerationService struct {
	pendingFn  func(ctx context.Context, actor model.Actor, limit, offset int32) ([]model.ForumPost, error)
	moderateFn func(ctx context.Context, actor model.Actor, postID int64, decision model.ModerationDecision, note *string) (*model.ForumPost, error)
}

func (m *mockModerationService) Pending(ctx context.Context, actor model.Actor, limit, offset int32) ([]model.ForumPost, error) {
	if m.pendingFn != nil {
		return m.pendingFn(ctx, actor, limit, offset)
	}
	return nil, nil
}

func (m *mockModerationService) Moderate(ctx context.Context, actor model.Actor, postID int64, decision model.ModerationDecision, note *string) (*model.ForumPost, error) {
	if m.moderateFn != nil {
		return m.moderateFn(ctx, actor, postID, decision, note)
	}
	return &model.ForumPost{}, nil
}

