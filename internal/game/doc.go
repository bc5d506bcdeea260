// Package game runs MonkeyStud: a three-card stud variant played with a
// 32-card deck (deuce through nine, four suits) by pluggable agents.
//
// A hand proceeds through an ante, one hidden card, and three streets of
// one up card followed by a betting round. Every raise shoves to a single
// cap, the lesser of the pot and the shortest live stack, so one pot is
// always enough. Remaining players reveal at showdown and the best three
// of their four cards wins.
//
// The engine records an ordered list of typed Events. Agents only ever see
// the serialized form: space-separated player:code:payload tokens.
package game
