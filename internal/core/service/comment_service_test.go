package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/careermap/careermap-api/internal/core/domain"
)

func newCommentService(comments *stubCommentRepo, companies *stubCompanyRepo, users *stubUserRepo, recorder *recorderStub) *CommentService {
	return NewCommentService(comments, companies, users, recorder, zerolog.Nop())
}

func TestCommentVisibilityFollowsCompany(t *testing.T) {
	companies := newStubCompanyRepo(company("priv", "u1", false))
	comments := &stubCommentRepo{}
	_ = comments.Create(context.Background(), &domain.Comment{ID: "m1", CompanyID: "priv", AuthorID: "u1"})
	svc := newCommentService(comments, companies, newStubUserRepo(), &recorderStub{})

	if _, err := svc.ListByCompany(context.Background(), nil, "priv"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("anonymous err = %v, want ErrUnauthenticated", err)
	}
	if _, err := svc.ListByCompany(context.Background(), principal("u2", domain.RoleUser), "priv"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("stranger err = %v, want ErrForbidden", err)
	}

	got, err := svc.ListByCompany(context.Background(), principal("u1", domain.RoleUser), "priv")
	if err != nil {
		t.Fatalf("owner list: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d comments, want 1", len(got))
	}
}

func TestCreateCommentOnPublicCompany(t *testing.T) {
	author := seedUser(t, "u2", "bob@example.com", "hunter42", domain.RoleUser, true)
	author.Name = "Bob"
	companies := newStubCompanyRepo(company("pub", "u1", true))
	comments := &stubCommentRepo{}
	recorder := &recorderStub{}
	svc := newCommentService(comments, companies, newStubUserRepo(author), recorder)

	comment, err := svc.Create(context.Background(), principal("u2", domain.RoleUser), "pub", "nice team", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if comment.AuthorID != "u2" || comment.AuthorName != "Bob" {
		t.Errorf("author = %q/%q, want u2/Bob", comment.AuthorID, comment.AuthorName)
	}
	if comment.ID == "" || comment.CreatedAt.IsZero() {
		t.Error("comment identity or timestamp not assigned")
	}
	if !recorder.has(domain.ActivityCommentPosted) {
		t.Error("comment_posted event not recorded")
	}
}

func TestCreateCommentGuards(t *testing.T) {
	companies := newStubCompanyRepo(company("priv", "u1", false))
	svc := newCommentService(&stubCommentRepo{}, companies, newStubUserRepo(), &recorderStub{})

	if _, err := svc.Create(context.Background(), nil, "priv", "hi", ""); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Errorf("anonymous err = %v, want ErrUnauthenticated", err)
	}
	if _, err := svc.Create(context.Background(), principal("u2", domain.RoleUser), "priv", "hi", ""); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("stranger err = %v, want ErrForbidden", err)
	}
	if _, err := svc.Create(context.Background(), principal("u1", domain.RoleUser), "missing", "hi", ""); !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Errorf("missing company err = %v, want ErrCompanyNotFound", err)
	}
}

func TestCreateReplyKeepsParent(t *testing.T) {
	companies := newStubCompanyRepo(company("pub", "u1", true))
	comments := &stubCommentRepo{}
	svc := newCommentService(comments, companies, newStubUserRepo(), &recorderStub{})

	reply, err := svc.Create(context.Background(), principal("u1", domain.RoleUser), "pub", "agreed", "m1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if reply.ParentID != "m1" {
		t.Errorf("parent = %q, want m1", reply.ParentID)
	}
}
