package storage

// Slot binds a Store to one game and player. It satisfies the game's
// high score and run history collaborators.
type Slot struct {
	store  *Store
	gameID string
	player string
}

// Slot returns the persistence slot for a player of a game.
func (s *Store) Slot(gameID, player string) *Slot {
	return &Slot{store: s, gameID: gameID, player: player}
}

// Player returns the slot's player name.
func (s *Slot) Player() string {
	return s.player
}

// LoadHighScore returns the player's best score.
func (s *Slot) LoadHighScore() (int, error) {
	return s.store.LoadHighScore(s.gameID, s.player)
}

// SaveHighScore stores the player's best score.
func (s *Slot) SaveHighScore(score int) error {
	return s.store.SaveHighScore(s.gameID, s.player, score)
}

// RecordRun appends a finished run to the history.
func (s *Slot) RecordRun(score int) error {
	_, err := s.store.SaveScore(s.gameID, s.player, score)
	return err
}
