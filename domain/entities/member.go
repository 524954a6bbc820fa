package entities

// Guild is the minimal guild identity exposed over the companion API.
type Guild struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Channel is a voice channel reference.
type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category groups the voice channels under one guild category.
type Category struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Channels []Channel `json:"channels"`
}

// Member is a guild member currently connected to a voice channel.
// Name is the guild display name, which is what rosters match against.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
