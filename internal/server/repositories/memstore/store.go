// Package memstore holds the partner and policy tables shared by the
// in-memory repositories. It enforces the same identity, uniqueness and
// foreign key rules as the PostgreSQL schema.
package memstore

import (
	"sort"
	"sync"

	"github.com/dmitrijs2005/policydesk/internal/server/models"
)

type Store struct {
	mu           sync.RWMutex
	partnerSeq   int64
	policySeq    int64
	partners     map[int64]models.Partner
	policies     map[int64]models.Policy
	externalCode map[string]int64
	policyNumber map[string]int64
}

func New() *Store {
	return &Store{
		partners:     make(map[int64]models.Partner),
		policies:     make(map[int64]models.Policy),
		externalCode: make(map[string]int64),
		policyNumber: make(map[string]int64),
	}
}

// InsertPartner stores a copy of p under a fresh id. It reports false when
// the external code is already taken.
func (s *Store) InsertPartner(p models.Partner) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.externalCode[p.ExternalCode]; ok {
		return 0, false
	}

	s.partnerSeq++
	p.ID = s.partnerSeq
	p.Policies = nil
	s.partners[p.ID] = p
	s.externalCode[p.ExternalCode] = p.ID
	return p.ID, true
}

// InsertPolicy stores a copy of pol under a fresh id. ok is false when the
// policy number is taken; found is false when the owning partner is absent.
func (s *Store) InsertPolicy(pol models.Policy) (id int64, found, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.partners[pol.PartnerID]; !exists {
		return 0, false, true
	}
	if _, taken := s.policyNumber[pol.PolicyNumber]; taken {
		return 0, true, false
	}

	s.policySeq++
	pol.ID = s.policySeq
	s.policies[pol.ID] = pol
	s.policyNumber[pol.PolicyNumber] = pol.ID
	return pol.ID, true, true
}

// Partner returns a copy of the partner row without policies.
func (s *Store) Partner(id int64) (*models.Partner, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.partners[id]
	if !ok {
		return nil, false
	}
	return &p, true
}

// Partners returns copies of all partner rows with their policies attached,
// newest first.
func (s *Store) Partners() []*models.Partner {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Partner, 0, len(s.partners))
	for _, p := range s.partners {
		cp := p
		cp.Policies = s.policiesOf(p.ID)
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAtUTC.Equal(out[j].CreatedAtUTC) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAtUTC.After(out[j].CreatedAtUTC)
	})
	return out
}

// PoliciesOf returns copies of the partner's policies in insertion order.
func (s *Store) PoliciesOf(partnerID int64) []*models.Policy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policiesOf(partnerID)
}

func (s *Store) policiesOf(partnerID int64) []*models.Policy {
	out := []*models.Policy{}
	for _, pol := range s.policies {
		if pol.PartnerID == partnerID {
			cp := pol
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) HasExternalCode(code string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.externalCode[code]
	return ok
}

func (s *Store) HasPolicyNumber(number string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.policyNumber[number]
	return ok
}
