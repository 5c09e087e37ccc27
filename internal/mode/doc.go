// Package mode runs a menu tree as an interactive context.
//
// A [Mode] is built from a [config.Config]: each item definition is turned
// into a [menu.Item] by the [Registry] entry for its kind. Front-ends drive
// it with input methods such as [Mode.Turn] and [Mode.Click] and call
// [Mode.Update] and [Mode.Draw] once per frame. After a period without
// input the mode daydreams: the display dims and the next input only wakes it.
package mode
