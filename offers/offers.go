// Package offers manages promotional coupons. The whole offer list is one
// JSON blob in the key-value store; writes are read-modify-write with
// last-write-wins semantics and no concurrent-writer protection.
package offers

import (
	"encoding/json"
	"strings"

	"arone/models"
)

const offersKey = "offers"

// KV is the string-keyed blob store the service runs on. A missing key must
// read as ("", nil).
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

type Service struct {
	kv KV
}

func NewService(kv KV) *Service {
	return &Service{kv: kv}
}

func (s *Service) List() ([]models.Offer, error) {
	raw, err := s.kv.Get(offersKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return []models.Offer{}, nil
	}

	var offers []models.Offer
	if err := json.Unmarshal([]byte(raw), &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

func (s *Service) save(offers []models.Offer) error {
	data, err := json.Marshal(offers)
	if err != nil {
		return err
	}
	return s.kv.Set(offersKey, string(data))
}

// Create appends a new offer with an id strictly greater than every id
// already in the store. Codes are stored uppercased.
func (s *Service) Create(o models.Offer) (models.Offer, error) {
	offers, err := s.List()
	if err != nil {
		return models.Offer{}, err
	}

	var maxID int64
	for _, existing := range offers {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	o.ID = maxID + 1
	o.Code = strings.ToUpper(strings.TrimSpace(o.Code))

	if err := s.save(append(offers, o)); err != nil {
		return models.Offer{}, err
	}
	return o, nil
}

// Toggle flips the active flag. Returns false when no offer has the id.
func (s *Service) Toggle(id int64) (bool, error) {
	offers, err := s.List()
	if err != nil {
		return false, err
	}

	for i := range offers {
		if offers[i].ID == id {
			offers[i].Active = !offers[i].Active
			return true, s.save(offers)
		}
	}
	return false, nil
}

// Delete removes the offer with the id. Deleting an absent id is a no-op.
func (s *Service) Delete(id int64) error {
	offers, err := s.List()
	if err != nil {
		return err
	}

	kept := offers[:0]
	for _, o := range offers {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(offers) {
		return nil
	}
	return s.save(kept)
}
