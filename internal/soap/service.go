package soap

import (
	"context"
	"log"
)

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// Add flattens the structured sections into the storage format and
// persists the note, stamped with the current time.
func (s *Service) Add(ctx context.Context, therapistID string, clientID int64, req CreateNoteRequest) (*Note, error) {
	note, err := s.repo.Add(ctx, therapistID, clientID,
		FlattenSubjective(req.Subjective),
		FlattenObjective(req.Objective),
		FlattenAssessment(req.Assessment),
		FlattenPlan(req.Plan),
	)
	if err != nil {
		return nil, err
	}

	log.Printf("✓ SOAP note added: client=%d note=%d", clientID, note.ID)
	return note, nil
}

func (s *Service) ListForClient(ctx context.Context, clientID int64) ([]Note, error) {
	return s.repo.ListForClient(ctx, clientID)
}

func (s *Service) LatestPerClient(ctx context.Context, therapistID string) ([]LatestNote, error) {
	return s.repo.LatestPerClient(ctx, therapistID)
}
