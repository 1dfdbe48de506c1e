package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/careermap/careermap-api/internal/auth"
	"github.com/careermap/careermap-api/internal/core/domain"
	"github.com/careermap/careermap-api/internal/core/ports"
)

func principal(id string, role domain.Role) *auth.Principal {
	return &auth.Principal{UserID: id, Email: id + "@example.com", Role: role}
}

func company(id, ownerID string, public bool) *domain.Company {
	return &domain.Company{
		ID:       id,
		Name:     "Acme " + id,
		Status:   domain.StatusApplied,
		IsPublic: public,
		OwnerID:  ownerID,
	}
}

func newCompanyService(companies *stubCompanyRepo, comments *stubCommentRepo, users *stubUserRepo, cache *cacheStub, recorder *recorderStub) *CompanyService {
	return NewCompanyService(companies, comments, users, cache, recorder, zerolog.Nop())
}

func TestListAnonymousUsesCache(t *testing.T) {
	companies := newStubCompanyRepo(
		company("c1", "u1", true),
		company("c2", "u1", false),
	)
	cache := &cacheStub{}
	svc := newCompanyService(companies, &stubCommentRepo{}, newStubUserRepo(), cache, &recorderStub{})

	// Cold cache: listing comes from the store and fills the cache.
	got, err := svc.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ID != "c1" {
		t.Errorf("anonymous listing = %v, want only the public company", got)
	}
	if cache.sets != 1 {
		t.Errorf("cache sets = %d, want 1", cache.sets)
	}

	// Warm cache: the store is not consulted again.
	delete(companies.companies, "c1")
	got, err = svc.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("cached listing = %v, want the cached public company", got)
	}
}

func TestListAuthenticatedSeesOwnAndPublic(t *testing.T) {
	companies := newStubCompanyRepo(
		company("c1", "u1", true),
		company("c2", "u1", false),
		company("c3", "u2", false),
	)
	svc := newCompanyService(companies, &stubCommentRepo{}, newStubUserRepo(), &cacheStub{}, &recorderStub{})

	got, err := svc.List(context.Background(), principal("u1", domain.RoleUser))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d companies, want own private plus public = 2", len(got))
	}
	for _, c := range got {
		if c.ID == "c3" {
			t.Error("listing leaked another user's private company")
		}
	}
}

func TestCreateRequiresAuthentication(t *testing.T) {
	svc := newCompanyService(newStubCompanyRepo(), &stubCommentRepo{}, newStubUserRepo(), &cacheStub{}, &recorderStub{})

	_, err := svc.Create(context.Background(), nil, ports.CompanyInput{Name: "Acme"})
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("err = %v, want ErrUnauthenticated", err)
	}
}

func TestCreateSetsOwnerAndInvalidatesCache(t *testing.T) {
	owner := seedUser(t, "u1", "ann@example.com", "hunter42", domain.RoleUser, true)
	owner.Name = "Ann"
	cache := &cacheStub{cached: true}
	recorder := &recorderStub{}
	svc := newCompanyService(newStubCompanyRepo(), &stubCommentRepo{}, newStubUserRepo(owner), cache, recorder)

	created, err := svc.Create(context.Background(), principal("u1", domain.RoleUser), ports.CompanyInput{
		Name:     "Acme",
		Status:   domain.StatusInterview,
		IsPublic: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.OwnerID != "u1" || created.OwnerName != "Ann" {
		t.Errorf("owner = %q/%q, want u1/Ann", created.OwnerID, created.OwnerName)
	}
	if created.ID == "" {
		t.Error("company ID not assigned")
	}
	if cache.invalidates != 1 {
		t.Errorf("cache invalidations = %d, want 1", cache.invalidates)
	}
	if !recorder.has(domain.ActivityCompanyCreated) {
		t.Error("company_created event not recorded")
	}
}

func TestGetHonorsOwnerOrPublicRule(t *testing.T) {
	companies := newStubCompanyRepo(
		company("pub", "u1", true),
		company("priv", "u1", false),
	)
	svc := newCompanyService(companies, &stubCommentRepo{}, newStubUserRepo(), &cacheStub{}, &recorderStub{})

	cases := []struct {
		name    string
		p       *auth.Principal
		id      string
		wantErr error
	}{
		{"anonymous reads public", nil, "pub", nil},
		{"anonymous blocked from private", nil, "priv", domain.ErrUnauthenticated},
		{"owner reads private", principal("u1", domain.RoleUser), "priv", nil},
		{"stranger blocked from private", principal("u2", domain.RoleUser), "priv", domain.ErrForbidden},
		{"unknown id", principal("u1", domain.RoleUser), "missing", domain.ErrCompanyNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Get(context.Background(), tc.p, tc.id)
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("err = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestUpdateOnlyOwnerMayMutate(t *testing.T) {
	companies := newStubCompanyRepo(company("pub", "u1", true))
	svc := newCompanyService(companies, &stubCommentRepo{}, newStubUserRepo(), &cacheStub{}, &recorderStub{})

	// A public company is readable by anyone but writable only by its owner.
	name := "Renamed"
	_, err := svc.Update(context.Background(), principal("u2", domain.RoleUser), "pub", ports.CompanyUpdate{Name: &name})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("stranger update err = %v, want ErrForbidden", err)
	}

	status := domain.StatusOffered
	updated, err := svc.Update(context.Background(), principal("u1", domain.RoleUser), "pub", ports.CompanyUpdate{
		Name:   &name,
		Status: &status,
	})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Name != "Renamed" || updated.Status != domain.StatusOffered {
		t.Errorf("update not applied: %+v", updated)
	}
	if !updated.IsPublic {
		t.Error("untouched field changed")
	}
}

func TestDeleteCascadesComments(t *testing.T) {
	companies := newStubCompanyRepo(company("c1", "u1", true))
	comments := &stubCommentRepo{}
	_ = comments.Create(context.Background(), &domain.Comment{ID: "m1", CompanyID: "c1", AuthorID: "u2"})
	_ = comments.Create(context.Background(), &domain.Comment{ID: "m2", CompanyID: "other", AuthorID: "u2"})
	cache := &cacheStub{cached: true}
	recorder := &recorderStub{}
	svc := newCompanyService(companies, comments, newStubUserRepo(), cache, recorder)

	if err := svc.Delete(context.Background(), principal("u1", domain.RoleUser), "c1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := companies.FindByID(context.Background(), "c1"); !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Error("company still present after delete")
	}
	if len(comments.comments) != 1 || comments.comments[0].ID != "m2" {
		t.Errorf("comment cascade wrong, remaining = %v", comments.comments)
	}
	if cache.invalidates != 1 {
		t.Errorf("cache invalidations = %d, want 1", cache.invalidates)
	}
	if !recorder.has(domain.ActivityCompanyDeleted) {
		t.Error("company_deleted event not recorded")
	}
}
