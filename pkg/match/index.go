package match

import "github.com/fieldops/rollcall/pkg/people"

// nameKey keys the name index on the normalized first+last pair.
type nameKey struct {
	first string
	last  string
}

// indexedUser is a live user entry in the name index with its postal code
// resolved once at build time, whichever address shape the record carried.
type indexedUser struct {
	user people.User
	zip  string // trimmed, empty when absent
}

// index holds probe structures over the live user list so each exported
// person is matched without scanning every user. Slice order within a
// bucket is input order, which keeps candidate ranking deterministic.
type index struct {
	byEmail map[string][]people.User
	byPhone map[string][]people.User
	byName  map[nameKey][]indexedUser
}

// newIndex builds the lookup structures for one matching run. Users missing
// a field are simply absent from that index; the name index requires both
// first and last name to normalize non-empty.
func newIndex(users []people.User) *index {
	idx := &index{
		byEmail: make(map[string][]people.User),
		byPhone: make(map[string][]people.User),
		byName:  make(map[nameKey][]indexedUser),
	}

	for i := range users {
		u := users[i]

		if email, ok := NormalizeEmail(u.Email); ok {
			idx.byEmail[email] = append(idx.byEmail[email], u)
		}

		if phone, ok := NormalizePhone(u.PhoneNumber); ok {
			idx.byPhone[phone] = append(idx.byPhone[phone], u)
		}

		first := NormalizeName(u.FirstName)
		last := NormalizeName(u.LastName)
		if first != "" && last != "" {
			key := nameKey{first: first, last: last}
			zip, _ := u.Address.Zip()
			idx.byName[key] = append(idx.byName[key], indexedUser{user: u, zip: zip})
		}
	}

	return idx
}
