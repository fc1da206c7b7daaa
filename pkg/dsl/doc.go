/*
Package dsl provides a fluent builder for story graphs.

It is handy for tests and for stories generated in code:

	b := dsl.New()
	b.Add("start").Text("You wake up.").Go("hall")
	b.Add("hall").Text("Two doors.").Choice("Left", "left").Choice("Right", "right")
	b.Add("left").Text("Sunlight.").Ending(domain.EndingWin, "You escaped.")
	b.Add("right").Text("A wall.").Ending(domain.EndingLose, "")

	loader, err := b.Build()
*/
package dsl
