// Package app wires the draftforge components together behind a
// terminal inspector. It loads configuration, builds the logger,
// clipboard transport and dispatcher, and runs a tcell event loop that
// renders the component tree as an outline with keyboard-driven
// selection and clipboard editing.
package app
