package memory

import (
	"sort"

	"github.com/driveops/driveops-api/internal/domain/entity"
	"github.com/driveops/driveops-api/internal/domain/repository"
)

var (
	_ repository.ReportedIssueRepository     = (*ReportedIssueRepo)(nil)
	_ repository.InspectionFindingRepository = (*InspectionFindingRepo)(nil)
)

// ReportedIssueRepo implementación en memoria de ReportedIssueRepository.
type ReportedIssueRepo struct {
	s *store[entity.ReportedIssue]
}

// NewReportedIssueRepository construye el repo en memoria.
func NewReportedIssueRepository() *ReportedIssueRepo {
	return &ReportedIssueRepo{s: newStore[entity.ReportedIssue]()}
}

// Create guarda un nuevo problema reportado.
func (r *ReportedIssueRepo) Create(issue *entity.ReportedIssue) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[issue.ID] = *issue
	return nil
}

// GetByJobOrder devuelve el problema si existe y pertenece a la orden.
func (r *ReportedIssueRepo) GetByJobOrder(id, jobOrderID string) (*entity.ReportedIssue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i, ok := r.s.items[id]
	if !ok || i.JobOrderID != jobOrderID {
		return nil, nil
	}
	cp := i
	return &cp, nil
}

// ListByJobOrder lista los problemas de la orden ordenados por creación.
func (r *ReportedIssueRepo) ListByJobOrder(jobOrderID string, limit, offset int) ([]*entity.ReportedIssue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.ReportedIssue
	for _, i := range r.s.items {
		if i.JobOrderID != jobOrderID {
			continue
		}
		cp := i
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return paginate(list, limit, offset), nil
}

// CountByJobOrder cuenta los problemas de la orden.
func (r *ReportedIssueRepo) CountByJobOrder(jobOrderID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, i := range r.s.items {
		if i.JobOrderID == jobOrderID {
			n++
		}
	}
	return n, nil
}

// Update reemplaza el problema almacenado.
func (r *ReportedIssueRepo) Update(issue *entity.ReportedIssue) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[issue.ID] = *issue
	return nil
}

// Delete elimina el problema.
func (r *ReportedIssueRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.items, id)
	return nil
}

// InspectionFindingRepo implementación en memoria de InspectionFindingRepository.
type InspectionFindingRepo struct {
	s *store[entity.InspectionFinding]
}

// NewInspectionFindingRepository construye el repo en memoria.
func NewInspectionFindingRepository() *InspectionFindingRepo {
	return &InspectionFindingRepo{s: newStore[entity.InspectionFinding]()}
}

// Create guarda un nuevo hallazgo.
func (r *InspectionFindingRepo) Create(finding *entity.InspectionFinding) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[finding.ID] = *finding
	return nil
}

// GetByJobOrder devuelve el hallazgo si existe y pertenece a la orden.
func (r *InspectionFindingRepo) GetByJobOrder(id, jobOrderID string) (*entity.InspectionFinding, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	f, ok := r.s.items[id]
	if !ok || f.JobOrderID != jobOrderID {
		return nil, nil
	}
	cp := f
	return &cp, nil
}

// ListByJobOrder lista los hallazgos de la orden ordenados por creación.
func (r *InspectionFindingRepo) ListByJobOrder(jobOrderID string, limit, offset int) ([]*entity.InspectionFinding, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.InspectionFinding
	for _, f := range r.s.items {
		if f.JobOrderID != jobOrderID {
			continue
		}
		cp := f
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return paginate(list, limit, offset), nil
}

// CountByJobOrder cuenta los hallazgos de la orden.
func (r *InspectionFindingRepo) CountByJobOrder(jobOrderID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, f := range r.s.items {
		if f.JobOrderID == jobOrderID {
			n++
		}
	}
	return n, nil
}

// Update reemplaza el hallazgo almacenado.
func (r *InspectionFindingRepo) Update(finding *entity.InspectionFinding) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[finding.ID] = *finding
	return nil
}

// Delete elimina el hallazgo.
func (r *InspectionFindingRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.items, id)
	return nil
}
