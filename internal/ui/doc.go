// Package ui implements the interactive search session controller using bubbletea's Elm architecture.
//
// One [Model] drives a whole run of the program:
//  1. Form : two artist inputs, an algorithm selector and a submit button
//  2. Progress : a bar and message updated from status polls
//  3. Results : the connection path, or a no-connection panel
//  4. Alert : one dismissible, auto-expiring message above the form
//
// Everything runs through Update on bubbletea's single event loop. Network calls are [tea.Cmd] closures whose
// answers come back as messages, and every timer (poll interval, autocomplete debounce, alert expiry, keypress
// pulse, glow frames) is scheduled through [Model] with an id and tag. Cancelling a timer bumps its tag, so late
// messages are dropped instead of acting twice.
//
// Status polls fire on a fixed interval. A tick that arrives while a status request is still in flight skips its
// request, and every answer that arrives after polling stopped is ignored, so a terminal status is handled once.
//
// Autocomplete is gated by [Options.AutocompleteEnabled]; when disabled, typing never schedules a lookup.
package ui
