package memory

import (
	"context"
	"sort"

	"vetclinic/internal/domain/owners"
	"vetclinic/internal/domain/pets"
)

type ownerRepo struct {
	s *Store
}

func (r *ownerRepo) List(ctx context.Context, search string) ([]owners.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]owners.Owner, 0)
	for _, o := range r.s.owners {
		if search != "" && !containsFold(o.Name, search) && !containsFold(o.Email, search) {
			continue
		}
		out = append(out, o)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *ownerRepo) Create(ctx context.Context, in owners.CreateInput) (owners.Owner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.emailTakenLocked(in.Email, 0) {
		return owners.Owner{}, owners.ErrDuplicateEmail
	}

	r.s.ownerSeq++
	o := owners.Owner{
		ID:        r.s.ownerSeq,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: r.s.timestamp(),
	}
	if in.ContactInfo != nil {
		o.ContactInfo = *in.ContactInfo
	}
	r.s.owners[o.ID] = o
	return o, nil
}

func (r *ownerRepo) Get(ctx context.Context, id int64) (owners.Detail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.owners[id]
	if !ok {
		return owners.Detail{}, owners.ErrNotFound
	}

	d := owners.Detail{Owner: o, Pets: make([]pets.Pet, 0)}
	for _, p := range r.s.pets {
		if p.OwnerID == id {
			d.Pets = append(d.Pets, p)
		}
	}
	sort.Slice(d.Pets, func(i, j int) bool { return d.Pets[i].ID < d.Pets[j].ID })
	return d, nil
}

func (r *ownerRepo) Update(ctx context.Context, id int64, p owners.Patch) (owners.Owner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o, ok := r.s.owners[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	if p.Email.Set && r.emailTakenLocked(p.Email.Value, id) {
		return owners.Owner{}, owners.ErrDuplicateEmail
	}

	if p.Name.Set {
		o.Name = p.Name.Value
	}
	if p.Email.Set {
		o.Email = p.Email.Value
	}
	if p.Phone.Set {
		o.Phone = p.Phone.Ptr()
	}
	if p.Address.Set {
		o.Address = p.Address.Ptr()
	}
	if p.ContactInfo.Set {
		o.ContactInfo = p.ContactInfo.Value
	}

	r.s.owners[id] = o
	return o, nil
}

func (r *ownerRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.owners[id]; !ok {
		return owners.ErrNotFound
	}
	r.s.deleteOwnerLocked(id)
	return nil
}

// emailTakenLocked compara como el índice UNIQUE: distingue mayúsculas.
func (r *ownerRepo) emailTakenLocked(email string, exceptID int64) bool {
	for _, o := range r.s.owners {
		if o.ID != exceptID && o.Email == email {
			return true
		}
	}
	return false
}
