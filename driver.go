// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package isotope

import "fmt"

// Driver is the opaque browser-automation handle the core consumes. The
// core never implements it; concrete bindings (a WebDriver client, a CDP
// session, a test fake) satisfy it externally. State owns the handle
// exclusively for the duration of one run; Close releases the underlying
// native resources and is called by the run entry points when
// Settings.DisposeOnCompletion is set.
type Driver interface {
	// Navigate loads the given URL.
	Navigate(url string) error
	// Exists reports whether an element matching selector is present.
	Exists(selector string) (bool, error)
	// Text returns the visible text of the element matching selector.
	Text(selector string) (string, error)
	// Attribute returns the named attribute of the matching element.
	Attribute(selector, name string) (string, error)
	// Click simulates a click on the matching element.
	Click(selector string) error
	// SetValue types value into the matching input element.
	SetValue(selector, value string) error
	// SelectOption selects the option with the given value in the
	// matching dropdown.
	SelectOption(selector, value string) error
	// Close releases the native driver resources.
	Close() error
}

// Lifted capability steps. Each wraps one Driver call via [AttemptAs],
// so returned errors and panics surface as state-carried failures
// labelled with the operation and its target.

// NavigateTo loads url in the attached driver.
func NavigateTo[E any](url string) Step[E, struct{}] {
	return AttemptAs[E](fmt.Sprintf("navigate %s", url), func(d Driver) (struct{}, error) {
		return struct{}{}, d.Navigate(url)
	})
}

// ElementExists reports whether an element matching selector is present.
func ElementExists[E any](selector string) Step[E, bool] {
	return AttemptAs[E](fmt.Sprintf("find %s", selector), func(d Driver) (bool, error) {
		return d.Exists(selector)
	})
}

// TextOf reads the visible text of the element matching selector.
func TextOf[E any](selector string) Step[E, string] {
	return AttemptAs[E](fmt.Sprintf("read %s", selector), func(d Driver) (string, error) {
		return d.Text(selector)
	})
}

// AttributeOf reads the named attribute of the element matching selector.
func AttributeOf[E any](selector, name string) Step[E, string] {
	return AttemptAs[E](fmt.Sprintf("read %s@%s", selector, name), func(d Driver) (string, error) {
		return d.Attribute(selector, name)
	})
}

// ClickOn clicks the element matching selector.
func ClickOn[E any](selector string) Step[E, struct{}] {
	return AttemptAs[E](fmt.Sprintf("click %s", selector), func(d Driver) (struct{}, error) {
		return struct{}{}, d.Click(selector)
	})
}

// TypeInto types value into the input element matching selector.
func TypeInto[E any](selector, value string) Step[E, struct{}] {
	return AttemptAs[E](fmt.Sprintf("type into %s", selector), func(d Driver) (struct{}, error) {
		return struct{}{}, d.SetValue(selector, value)
	})
}

// SelectFrom selects the option with the given value in the dropdown
// matching selector.
func SelectFrom[E any](selector, value string) Step[E, struct{}] {
	return AttemptAs[E](fmt.Sprintf("select %q from %s", value, selector), func(d Driver) (struct{}, error) {
		return struct{}{}, d.SelectOption(selector, value)
	})
}

// WaitFor polls [ElementExists] with the Settings interval until the
// element appears, failing with a timeout once the Settings wait deadline
// elapses.
func WaitFor[E any](selector string) Step[E, bool] {
	return WaitUntil(ElementExists[E](selector), func(found bool) bool {
		return !found
	})
}
