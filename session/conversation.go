package session

import "github.com/poiesic/shopsense/core"

// conversationCapacity bounds the turn ring buffer; the oldest turn is
// evicted first once the buffer is full.
const conversationCapacity = 10

// Turn is one completed query/response exchange.
type Turn struct {
	Query      string
	Entities   core.QueryEntities
	ProductIDs []core.ID
}

// Conversation is a bounded FIFO buffer of recent turns, used to bias
// retrieval toward recently discussed terms.
type Conversation struct {
	turns []Turn
}

// NewConversation creates an empty conversation.
func NewConversation() *Conversation {
	return &Conversation{}
}

// AddTurn appends a turn, evicting the oldest once capacity is reached.
func (c *Conversation) AddTurn(turn Turn) {
	c.turns = append(c.turns, turn)
	if len(c.turns) > conversationCapacity {
		c.turns = c.turns[len(c.turns)-conversationCapacity:]
	}
}

// Turns returns the buffered turns, oldest first.
func (c *Conversation) Turns() []Turn {
	return c.turns
}

// Len returns the number of buffered turns.
func (c *Conversation) Len() int {
	return len(c.turns)
}

// RecentQueries returns the query text of up to n most recent turns,
// oldest first.
func (c *Conversation) RecentQueries(n int) []string {
	turns := c.turns
	if n > 0 && len(turns) > n {
		turns = turns[len(turns)-n:]
	}
	queries := make([]string, 0, len(turns))
	for _, turn := range turns {
		queries = append(queries, turn.Query)
	}
	return queries
}
