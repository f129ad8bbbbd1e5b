package zoderrors

import (
	"errors"
	"testing"
)

func TestUnrecognizedKindError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &UnrecognizedKindError{
			Kind: "ZodVoid",
			Node: "void()",
			Path: []string{"property: a", "items"},
		}
		want := "unrecognized schema kind ZodVoid (void()) at property: a > items"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &UnrecognizedKindError{}
		if err.Error() != "unrecognized schema kind at <root>" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("PathString renders root", func(t *testing.T) {
		err := &UnrecognizedKindError{}
		if err.PathString() != "<root>" {
			t.Errorf("unexpected path: %s", err.PathString())
		}
	})

	t.Run("Is matches ErrUnrecognizedKind", func(t *testing.T) {
		err := &UnrecognizedKindError{Kind: "test"}
		if !errors.Is(err, ErrUnrecognizedKind) {
			t.Error("UnrecognizedKindError should match ErrUnrecognizedKind")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &UnrecognizedKindError{Kind: "test"}
		if errors.Is(err, ErrDuplicateRef) {
			t.Error("UnrecognizedKindError should not match ErrDuplicateRef")
		}
	})
}

func TestDuplicateRefError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &DuplicateRefError{
			Name:       "User",
			ExistingID: 3,
			NewID:      9,
			Path:       []string{"property: owner"},
		}
		want := `duplicate component reference "User": bound to node 3, requested again by node 9 at property: owner`
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrDuplicateRef", func(t *testing.T) {
		err := &DuplicateRefError{Name: "User"}
		if !errors.Is(err, ErrDuplicateRef) {
			t.Error("DuplicateRefError should match ErrDuplicateRef")
		}
	})
}

func TestUnexpectedReferenceError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &UnexpectedReferenceError{
			Ref:  "#/components/schemas/User",
			Path: []string{"property: base"},
		}
		want := "unexpected reference fragment #/components/schemas/User at property: base"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrUnexpectedReference", func(t *testing.T) {
		err := &UnexpectedReferenceError{}
		if !errors.Is(err, ErrUnexpectedReference) {
			t.Error("UnexpectedReferenceError should match ErrUnexpectedReference")
		}
	})
}

func TestDefinitionError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &DefinitionError{
			Path:    []string{"User", "properties", "age"},
			Message: "unknown type",
			Cause:   cause,
		}
		want := "definition error at User > properties > age: unknown type: underlying"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with empty path", func(t *testing.T) {
		err := &DefinitionError{Message: "definition file has no schemas"}
		want := "definition error at <root>: definition file has no schemas"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &DefinitionError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrDefinition", func(t *testing.T) {
		err := &DefinitionError{Message: "test"}
		if !errors.Is(err, ErrDefinition) {
			t.Error("DefinitionError should match ErrDefinition")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "RefPrefix",
			Value:   "bad prefix",
			Message: "must end with /",
		}
		want := "configuration error for RefPrefix (value: bad prefix): must end with /"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{Message: "test"}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})
}
