package services

import (
	"testing"

	"fruatrecard.my.id/internal/models"
)

func sampleList() *models.ProjectList {
	return &models.ProjectList{Projects: []models.Project{
		{Name: "API Server", URL: "https://api.example.com", Icon: "fa-server", Tags: []string{"Go", "API"}},
		{Name: "CDN", URL: "#", Icon: "fa-database"},
	}}
}

func TestGetAll_PreservesOrder(t *testing.T) {
	s := NewProjectService(sampleList())

	got := s.GetAll()
	if len(got) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(got))
	}
	if got[0].Name != "API Server" || got[1].Name != "CDN" {
		t.Errorf("unexpected order: %+v", got)
	}
	if s.Count() != 2 {
		t.Errorf("expected count 2, got %d", s.Count())
	}
}

func TestGetAll_ReturnsCopy(t *testing.T) {
	s := NewProjectService(sampleList())

	first := s.GetAll()
	first[0].Name = "changed"
	first[0].Tags[0] = "changed"

	second := s.GetAll()
	if second[0].Name != "API Server" {
		t.Errorf("name mutated through returned slice: %s", second[0].Name)
	}
	if second[0].Tags[0] != "Go" {
		t.Errorf("tags mutated through returned slice: %v", second[0].Tags)
	}
}

func TestNewProjectService_CopiesInput(t *testing.T) {
	list := sampleList()
	s := NewProjectService(list)

	list.Projects[0].Name = "changed"

	if got := s.GetAll()[0].Name; got != "API Server" {
		t.Errorf("service shares the caller's slice, got %s", got)
	}
}

func TestNewProjectService_Nil(t *testing.T) {
	s := NewProjectService(nil)

	got := s.GetAll()
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}
