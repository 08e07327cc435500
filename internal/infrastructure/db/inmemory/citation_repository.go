package inmemory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Jachacon12/arquitectura-de-servidores/internal/domain/entities"
	"github.com/Jachacon12/arquitectura-de-servidores/internal/domain/repositories"
)

type CitationRepository struct {
	mu        sync.RWMutex
	citations map[primitive.ObjectID]entities.Citation
}

func NewCitationRepository() repositories.CitationRepository {
	return &CitationRepository{
		citations: make(map[primitive.ObjectID]entities.Citation),
	}
}

func (r *CitationRepository) Create(ctx context.Context, citation *entities.Citation) (*entities.Citation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if citation.ID.IsZero() {
		citation.ID = primitive.NewObjectID()
	}
	r.citations[citation.ID] = *citation
	return citation, nil
}

func (r *CitationRepository) FindAll(ctx context.Context) ([]*entities.Citation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Citation, 0, len(r.citations))
	for _, c := range r.citations {
		found := c
		result = append(result, &found)
	}
	return result, nil
}

func (r *CitationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.Citation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.citations[id]; ok {
		found := c
		return &found, nil
	}
	return nil, nil
}

func (r *CitationRepository) Update(ctx context.Context, citation *entities.Citation) (*entities.Citation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.citations[citation.ID]; !ok {
		return nil, entities.ErrCitationNotFound
	}
	r.citations[citation.ID] = *citation
	return citation, nil
}

func (r *CitationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.citations[id]; !ok {
		return entities.ErrCitationNotFound
	}
	delete(r.citations, id)
	return nil
}
