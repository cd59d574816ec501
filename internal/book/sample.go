package book

// Sample returns the seed book installed for a user who has no saved data
// yet, so the first session starts with something to look at.
func Sample() *AddressBook {
	return &AddressBook{Contacts: []Contact{
		{
			Name:    "Alex Yeoh",
			Phone:   "87438807",
			Email:   "alexyeoh@example.com",
			Address: "Blk 30 Geylang Street 29, #06-40",
			Tags:    []string{"friends"},
		},
		{
			Name:    "Bernice Yu",
			Phone:   "99272758",
			Email:   "berniceyu@example.com",
			Address: "Blk 30 Lorong 3 Serangoon Gardens, #07-18",
			Tags:    []string{"colleagues", "friends"},
		},
		{
			Name:    "Charlotte Oliveiro",
			Phone:   "93210283",
			Email:   "charlotte@example.com",
			Address: "Blk 11 Ang Mo Kio Street 74, #11-04",
			Tags:    []string{"neighbours"},
		},
	}}
}
