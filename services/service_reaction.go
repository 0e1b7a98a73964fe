// Package services holds the domain logic that is independent of HTTP
// and the store. The reaction transition lives here as a pure function
// so its semantics can be pinned down in isolation; the post repository
// executes the same transition atomically against the database.
package services

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Zibuza/Reschool-HW-B/model"
)

type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// ReactionState is a user's membership after a toggle.
type ReactionState string

const (
	StateLiked    ReactionState = "liked"
	StateDisliked ReactionState = "disliked"
	StateNone     ReactionState = "none"
)

var ErrUnsupportedReaction = errors.New("wrong reaction type")

// Valid reports whether kind is one of the supported reaction types.
func (k ReactionKind) Valid() bool {
	return k == ReactionLike || k == ReactionDislike
}

// ApplyReaction computes the next state of a post's membership lists for
// one user's toggle. Requesting the reaction the user already holds
// removes it; requesting the other one moves the user across. The input
// is never mutated. A user already present in both lists (which the
// invariant forbids) still converges: membership in both is cleared
// before the requested side is re-added.
func ApplyReaction(r model.Reactions, userID bson.ObjectID, kind ReactionKind) (model.Reactions, ReactionState, error) {
	if !kind.Valid() {
		return r, StateNone, ErrUnsupportedReaction
	}

	inLikes := containsID(r.Likes, userID)
	inDislikes := containsID(r.Dislikes, userID)

	next := model.Reactions{
		Likes:    removeID(r.Likes, userID),
		Dislikes: removeID(r.Dislikes, userID),
	}

	state := StateNone
	switch kind {
	case ReactionLike:
		if !inLikes {
			next.Likes = append(next.Likes, userID)
			state = StateLiked
		}
	case ReactionDislike:
		if !inDislikes {
			next.Dislikes = append(next.Dislikes, userID)
			state = StateDisliked
		}
	}
	return next, state, nil
}

// StateOf derives a user's current membership from a post's lists.
func StateOf(r model.Reactions, userID bson.ObjectID) ReactionState {
	if containsID(r.Likes, userID) {
		return StateLiked
	}
	if containsID(r.Dislikes, userID) {
		return StateDisliked
	}
	return StateNone
}

func containsID(ids []bson.ObjectID, id bson.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []bson.ObjectID, id bson.ObjectID) []bson.ObjectID {
	out := make([]bson.ObjectID, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
