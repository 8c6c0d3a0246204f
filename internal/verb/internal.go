package verb

import (
	"errors"
	"fmt"
)

// Internal is one of the built-in actions verbs are bound to. The set is
// closed: configuration can only refer to these names.
type Internal int

const (
	InternalApplyFlags Internal = iota
	InternalBack
	InternalDefaultLayout
	InternalClearOutput
	InternalClearStage
	InternalClosePanelCancel
	InternalClosePanelOk
	InternalClosePreview
	InternalCloseStagingArea
	InternalCopyLine
	InternalCopyPath
	InternalEscape
	InternalFilesystems
	InternalFocus
	InternalFocusStagingAreaNoOpen
	InternalHelp
	InternalInputClear
	InternalInputDelCharBelow
	InternalInputDelCharLeft
	InternalInputDelWordLeft
	InternalInputDelWordRight
	InternalInputGoLeft
	InternalInputGoRight
	InternalInputGoToEnd
	InternalInputGoToStart
	InternalInputGoWordLeft
	InternalInputGoWordRight
	InternalInputPaste
	InternalInputSelectionCopy
	InternalInputSelectionCut
	InternalLineDown
	InternalLineDownNoCycle
	InternalLineUp
	InternalLineUpNoCycle
	InternalModeCommand
	InternalModeInput
	InternalMovePanelDivider
	InternalNextDir
	InternalNextMatch
	InternalNextSameDepth
	InternalNoSort
	InternalOpenLeave
	InternalOpenPreview
	InternalOpenStagingArea
	InternalOpenStay
	InternalOpenStayFilter
	InternalOpenTrash
	InternalPageDown
	InternalPageUp
	InternalPanelLeft
	InternalPanelLeftNoOpen
	InternalPanelRight
	InternalPanelRightNoOpen
	InternalParent
	InternalPreviewBinary
	InternalPreviewImage
	InternalPreviewText
	InternalPreviewTty
	InternalPreviousDir
	InternalPreviousMatch
	InternalPreviousSameDepth
	InternalPrintPath
	InternalPrintRelativePath
	InternalPrintTree
	InternalQuit
	InternalRefresh
	InternalDeleteTrashedFile
	InternalRestoreTrashedFile
	InternalPurgeTrash
	InternalRootDown
	InternalRootUp
	InternalSelect
	InternalShow
	InternalSelectFirst
	InternalSelectLast
	InternalSetPanelWidth
	InternalSetSyntaxTheme
	InternalSortByCount
	InternalSortByDate
	InternalSortBySize
	InternalSortByType
	InternalSortByTypeDirsFirst
	InternalSortByTypeDirsLast
	InternalStage
	InternalStageAllDirectories
	InternalStageAllFiles
	InternalStartEndPanel
	InternalToggleCounts
	InternalToggleDates
	InternalToggleDeviceId
	InternalToggleFiles
	InternalToggleGitFileInfo
	InternalToggleGitIgnore
	InternalToggleGitStatus
	InternalToggleHidden
	InternalToggleIgnore
	InternalTogglePerm
	InternalTogglePreview
	InternalToggleRootFs
	InternalSetMaxDepth
	InternalUnsetMaxDepth
	InternalToggleSecondTree
	InternalToggleSizes
	InternalToggleStage
	InternalToggleStagingArea
	InternalToggleTree
	InternalToggleTrimRoot
	InternalTotalSearch
	InternalSearchAgain
	InternalTrash
	InternalUnstage
	InternalUpTree
	InternalWriteOutput

	internalCount
)

type internalDef struct {
	name        string
	description string
	needPath    bool
}

var internalDefs = [internalCount]internalDef{
	InternalApplyFlags:             {"apply_flags", "apply flags (eg `-sd` to show sizes and dates)", false},
	InternalBack:                   {"back", "revert to the previous state (mapped to *esc*)", false},
	InternalDefaultLayout:          {"default_layout", "restore default panel sizes", false},
	InternalClearOutput:            {"clear_output", "clear the --verb-output file", false},
	InternalClearStage:             {"clear_stage", "empty the staging area", false},
	InternalClosePanelCancel:       {"close_panel_cancel", "close the panel, not using the selected path", false},
	InternalClosePanelOk:           {"close_panel_ok", "close the panel, validating the selected path", false},
	InternalClosePreview:           {"close_preview", "close the preview panel", false},
	InternalCloseStagingArea:       {"close_staging_area", "close the staging area panel", false},
	InternalCopyLine:               {"copy_line", "copy selected line (in tree or preview)", true},
	InternalCopyPath:               {"copy_path", "copy path to system clipboard", true},
	InternalEscape:                 {"escape", "escape from edition, completion, page, etc.", false},
	InternalFilesystems:            {"filesystems", "list mounted filesystems", false},
	InternalFocus:                  {"focus", "display the directory (mapped to *enter*)", true},
	InternalFocusStagingAreaNoOpen: {"focus_staging_area_no_open", "focus the staging area if already open", false},
	InternalHelp:                   {"help", "display the help screen", false},
	InternalInputClear:             {"input_clear", "empty the input", false},
	InternalInputDelCharBelow:      {"input_del_char_below", "delete the char left at the cursor's position", false},
	InternalInputDelCharLeft:       {"input_del_char_left", "delete the char left of the cursor", false},
	InternalInputDelWordLeft:       {"input_del_word_left", "delete the word left of the cursor", false},
	InternalInputDelWordRight:      {"input_del_word_right", "delete the word right of the cursor", false},
	InternalInputGoLeft:            {"input_go_left", "move the cursor to the left", false},
	InternalInputGoRight:           {"input_go_right", "move the cursor to the right", false},
	InternalInputGoToEnd:           {"input_go_to_end", "move the cursor to the end of input", false},
	InternalInputGoToStart:         {"input_go_to_start", "move the cursor to the start of input", false},
	InternalInputGoWordLeft:        {"input_go_word_left", "move the cursor one word to the left", false},
	InternalInputGoWordRight:       {"input_go_word_right", "move the cursor one word to the right", false},
	InternalInputPaste:             {"input_paste", "paste the clipboard content into the input", false},
	InternalInputSelectionCopy:     {"input_selection_copy", "copy the selected part of the input into the selection", false},
	InternalInputSelectionCut:      {"input_selection_cut", "cut the selected part of the input into the selection", false},
	InternalLineDown:               {"line_down", "move one line down", false},
	InternalLineDownNoCycle:        {"line_down_no_cycle", "move one line down", false},
	InternalLineUp:                 {"line_up", "move one line up", false},
	InternalLineUpNoCycle:          {"line_up_no_cycle", "move one line up", false},
	InternalModeCommand:            {"mode_command", "enter the command mode", false},
	InternalModeInput:              {"mode_input", "enter the input mode", false},
	InternalMovePanelDivider:       {"move_panel_divider", "move a panel divider", false},
	InternalNextDir:                {"next_dir", "select the next directory", false},
	InternalNextMatch:              {"next_match", "select the next match", false},
	InternalNextSameDepth:          {"next_same_depth", "select the next file at the same depth", false},
	InternalNoSort:                 {"no_sort", "don't sort", false},
	InternalOpenLeave:              {"open_leave", "open file or directory according to OS (quit)", true},
	InternalOpenPreview:            {"open_preview", "open the preview panel", true},
	InternalOpenStagingArea:        {"open_staging_area", "open the staging area", false},
	InternalOpenStay:               {"open_stay", "open file or directory according to OS (stay in the browser)", true},
	InternalOpenStayFilter:         {"open_stay_filter", "display the directory, keeping the current pattern", true},
	InternalOpenTrash:              {"open_trash", "show the content of the trash", false},
	InternalPageDown:               {"page_down", "scroll one page down", false},
	InternalPageUp:                 {"page_up", "scroll one page up", false},
	InternalPanelLeft:              {"panel_left", "focus or open panel on left", false},
	InternalPanelLeftNoOpen:        {"panel_left_no_open", "focus panel on left", false},
	InternalPanelRight:             {"panel_right", "focus or open panel on right", false},
	InternalPanelRightNoOpen:       {"panel_right_no_open", "focus panel on right", false},
	InternalParent:                 {"parent", "move to the parent directory", false},
	InternalPreviewBinary:          {"preview_binary", "preview the selection as binary", true},
	InternalPreviewImage:           {"preview_image", "preview the selection as image", true},
	InternalPreviewText:            {"preview_text", "preview the selection as text", true},
	InternalPreviewTty:             {"preview_tty", "preview the selection as tty", true},
	InternalPreviousDir:            {"previous_dir", "select the previous directory", false},
	InternalPreviousMatch:          {"previous_match", "select the previous match", false},
	InternalPreviousSameDepth:      {"previous_same_depth", "select the previous file at the same depth", false},
	InternalPrintPath:              {"print_path", "print path and quit", true},
	InternalPrintRelativePath:      {"print_relative_path", "print relative path and quit", true},
	InternalPrintTree:              {"print_tree", "print tree and quit", true},
	InternalQuit:                   {"quit", "quit the browser", false},
	InternalRefresh:                {"refresh", "refresh tree and clear size cache", false},
	InternalDeleteTrashedFile:      {"delete_trashed_file", "irreversibly delete a file which is in the trash", false},
	InternalRestoreTrashedFile:     {"restore_trashed_file", "restore a file which is in the trash", false},
	InternalPurgeTrash:             {"purge_trash", "irreversibly delete the trash's content", false},
	InternalRootDown:               {"root_down", "move tree root down", true},
	InternalRootUp:                 {"root_up", "move tree root up", true},
	InternalSelect:                 {"select", "select a file by path", true},
	InternalShow:                   {"show", "reveal and select a file by path", true},
	InternalSelectFirst:            {"select_first", "select the first item", false},
	InternalSelectLast:             {"select_last", "select the last item", false},
	InternalSetPanelWidth:          {"set_panel_width", "set the width of a panel", false},
	InternalSetSyntaxTheme:         {"set_syntax_theme", "set the theme of code preview", false},
	InternalSortByCount:            {"sort_by_count", "sort by count", false},
	InternalSortByDate:             {"sort_by_date", "sort by date", false},
	InternalSortBySize:             {"sort_by_size", "sort by size", false},
	InternalSortByType:             {"sort_by_type", "sort by type", false},
	InternalSortByTypeDirsFirst:    {"sort_by_type_dirs_first", "sort by type, dirs first", false},
	InternalSortByTypeDirsLast:     {"sort_by_type_dirs_last", "sort by type, dirs last", false},
	InternalStage:                  {"stage", "add selection to staging area", true},
	InternalStageAllDirectories:    {"stage_all_directories", "stage all matching directories", true},
	InternalStageAllFiles:          {"stage_all_files", "stage all matching files", true},
	InternalStartEndPanel:          {"start_end_panel", "either open or close an additional panel", true},
	InternalToggleCounts:           {"toggle_counts", "toggle showing number of files in directories", false},
	InternalToggleDates:            {"toggle_dates", "toggle showing last modified dates", false},
	InternalToggleDeviceId:         {"toggle_device_id", "toggle showing device id", false},
	InternalToggleFiles:            {"toggle_files", "toggle showing files (or just folders)", false},
	InternalToggleGitFileInfo:      {"toggle_git_file_info", "toggle display of git file information", false},
	InternalToggleGitIgnore:        {"toggle_git_ignore", "toggle use of .gitignore and .ignore", false},
	InternalToggleGitStatus:        {"toggle_git_status", "toggle showing only files relevant for git status", false},
	InternalToggleHidden:           {"toggle_hidden", "toggle showing hidden files", false},
	InternalToggleIgnore:           {"toggle_ignore", "toggle use of .gitignore and .ignore", false},
	InternalTogglePerm:             {"toggle_perm", "toggle showing file permissions", false},
	InternalTogglePreview:          {"toggle_preview", "open/close the preview panel", false},
	InternalToggleRootFs:           {"toggle_root_fs", "toggle showing filesystem info on top", false},
	InternalSetMaxDepth:            {"set_max_depth", "set the maximum directory depth shown", false},
	InternalUnsetMaxDepth:          {"unset_max_depth", "clear the max_depth", false},
	InternalToggleSecondTree:       {"toggle_second_tree", "toggle display of a second tree panel", true},
	InternalToggleSizes:            {"toggle_sizes", "toggle showing sizes", false},
	InternalToggleStage:            {"toggle_stage", "add or remove selection to staging area", true},
	InternalToggleStagingArea:      {"toggle_staging_area", "open/close the staging area panel", false},
	InternalToggleTree:             {"toggle_tree", "toggle showing more than one level of the tree", true},
	InternalToggleTrimRoot:         {"toggle_trim_root", "toggle removing nodes at first level too", false},
	InternalTotalSearch:            {"total_search", "search again but on all children", false},
	InternalSearchAgain:            {"search_again", "either put back last search, or search deeper", false},
	InternalTrash:                  {"trash", "move file to system trash", true},
	InternalUnstage:                {"unstage", "remove selection from staging area", true},
	InternalUpTree:                 {"up_tree", "focus the parent of the current root", true},
	InternalWriteOutput:            {"write_output", "write the argument to the --verb-output file", false},
}

var internalsByName = func() map[string]Internal {
	m := make(map[string]Internal, internalCount)
	for i := Internal(0); i < internalCount; i++ {
		m[internalDefs[i].name] = i
	}
	return m
}()

// ErrUnknownInternal is matched by errors returned for names outside the
// catalog.
var ErrUnknownInternal = errors.New("unknown internal")

// UnknownInternalError reports a name which isn't in the catalog.
type UnknownInternalError struct {
	Name string
}

func (e *UnknownInternalError) Error() string {
	return fmt.Sprintf("unknown internal: %q", e.Name)
}

func (e *UnknownInternalError) Is(target error) bool {
	return target == ErrUnknownInternal
}

// InternalFromName looks an internal up by its name.
func InternalFromName(name string) (Internal, error) {
	if internal, ok := internalsByName[name]; ok {
		return internal, nil
	}
	return 0, &UnknownInternalError{Name: name}
}

// AllInternals returns every internal in declaration order.
func AllInternals() []Internal {
	all := make([]Internal, internalCount)
	for i := range all {
		all[i] = Internal(i)
	}
	return all
}

func (i Internal) valid() bool {
	return i >= 0 && i < internalCount
}

// Name is the identifier used in configuration and in typed commands.
func (i Internal) Name() string {
	if !i.valid() {
		return fmt.Sprintf("internal(%d)", int(i))
	}
	return internalDefs[i].name
}

func (i Internal) String() string {
	return i.Name()
}

func (i Internal) Description() string {
	if !i.valid() {
		return ""
	}
	return internalDefs[i].description
}

// NeedPath tells whether the internal acts on the selected path.
func (i Internal) NeedPath() bool {
	return i.valid() && internalDefs[i].needPath
}

// InvocationPattern describes how typed text is parsed into the internal's
// arguments. It's also shown in the help.
func (i Internal) InvocationPattern() string {
	switch i {
	case InternalApplyFlags:
		return `-(?P<flags>\w+)?`
	case InternalFocus:
		return `focus (?P<path>.*)?`
	case InternalSelect:
		return `select (?P<path>.*)?`
	case InternalShow:
		return `show (?P<path>.*)?`
	case InternalLineDown:
		return `line_down (?P<count>\d*)?`
	case InternalLineUp:
		return `line_up (?P<count>\d*)?`
	case InternalLineDownNoCycle:
		return `line_down_no_cycle (?P<count>\d*)?`
	case InternalLineUpNoCycle:
		return `line_up_no_cycle (?P<count>\d*)?`
	case InternalMovePanelDivider:
		return `move_panel_divider (?P<idx>\d+) (?P<dx>-?\d+)`
	case InternalSetPanelWidth:
		return `set_panel_width (?P<idx>\d+) (?P<width>\d+)`
	case InternalSetMaxDepth:
		return `set_max_depth (?P<depth>\d+)`
	case InternalSetSyntaxTheme:
		return `set_syntax_theme {theme:theme}`
	case InternalWriteOutput:
		return `write_output (?P<line>.*)`
	default:
		return i.Name()
	}
}

// ExecPattern is the template re-serializing the internal's arguments into a
// command string.
func (i Internal) ExecPattern() string {
	switch i {
	case InternalApplyFlags:
		return `apply_flags {flags}`
	case InternalFocus:
		return `focus {path}`
	case InternalLineDown:
		return `line_down {count}`
	case InternalLineUp:
		return `line_up {count}`
	case InternalLineDownNoCycle:
		return `line_down_no_cycle {count}`
	case InternalLineUpNoCycle:
		return `line_up_no_cycle {count}`
	case InternalMovePanelDivider:
		return `move_panel_divider {idx} {dx}`
	case InternalSetPanelWidth:
		return `set_panel_width {idx} {width}`
	case InternalWriteOutput:
		return `write_output {line}`
	default:
		return i.Name()
	}
}

// NeedsSelection tells whether a selected path must exist before the
// internal runs. A focus with an argument doesn't need one.
func (i Internal) NeedsSelection(arg *string) bool {
	if i == InternalFocus {
		return arg == nil
	}
	return i.NeedPath()
}

// IsInputRelated reports internals which edit the input line. They apply
// even when the input, not the tree, has the focus.
func (i Internal) IsInputRelated() bool {
	switch i {
	case InternalInputClear,
		InternalInputDelCharBelow,
		InternalInputDelCharLeft,
		InternalInputDelWordLeft,
		InternalInputDelWordRight,
		InternalInputGoLeft,
		InternalInputGoRight,
		InternalInputGoToEnd,
		InternalInputGoToStart,
		InternalInputGoWordLeft,
		InternalInputGoWordRight,
		InternalInputPaste,
		InternalInputSelectionCopy,
		InternalInputSelectionCut:
		return true
	default:
		return false
	}
}
