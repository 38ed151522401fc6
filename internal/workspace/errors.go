package workspace

import "errors"

var (
	// ErrLastFolder indicates an attempt to hide the only visible folder.
	ErrLastFolder = errors.New("cannot hide the last visible folder")

	// ErrFolderNotVisible indicates the hide target is not in the folder list.
	ErrFolderNotVisible = errors.New("folder is not visible in the workspace")

	// ErrFolderNotHidden indicates the show target is not in the hidden list.
	ErrFolderNotHidden = errors.New("folder is not hidden")

	// ErrMalformedDescriptor indicates the descriptor document is not valid.
	ErrMalformedDescriptor = errors.New("malformed workspace descriptor")
)
