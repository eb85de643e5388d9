package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexdesk/internal/model"
	"lexdesk/internal/permission"
	"lexdesk/internal/testutil"
)

func intPtr(v int) *int { return &v }

func TestCreateAllocatesPositions(t *testing.T) {
	db := testutil.NewTestDB(t)
	owner := testutil.SeedUser(t, db, "ann", permission.RolePartner)
	cols := testutil.SeedBoard(t, db, owner, "To Do", "Done")
	repo := NewTicketRepository(db)

	// First ticket into an empty column gets position 0.
	first := &model.Ticket{ColumnID: cols[0].ID, Title: "Draft engagement letter", ReporterID: owner.ID}
	require.NoError(t, repo.Create(first, nil))
	assert.Equal(t, 0, first.Position)

	// Subsequent tickets append.
	for i, title := range []string{"Review NDA", "File motion"} {
		ticket := &model.Ticket{ColumnID: cols[0].ID, Title: title, ReporterID: owner.ID}
		require.NoError(t, repo.Create(ticket, nil))
		assert.Equal(t, i+1, ticket.Position)
	}

	// A column holding 0,1,2 yields 3 next.
	next := &model.Ticket{ColumnID: cols[0].ID, Title: "Prepare brief", ReporterID: owner.ID}
	require.NoError(t, repo.Create(next, nil))
	assert.Equal(t, 3, next.Position)
}

func TestCreateWithExplicitPosition(t *testing.T) {
	db := testutil.NewTestDB(t)
	owner := testutil.SeedUser(t, db, "ann", permission.RolePartner)
	cols := testutil.SeedBoard(t, db, owner, "To Do")
	repo := NewTicketRepository(db)

	ticket := &model.Ticket{ColumnID: cols[0].ID, Title: "Urgent filing", ReporterID: owner.ID}
	require.NoError(t, repo.Create(ticket, intPtr(7)))
	assert.Equal(t, 7, ticket.Position)
}

func TestMoveAcrossColumnsAppends(t *testing.T) {
	db := testutil.NewTestDB(t)
	owner := testutil.SeedUser(t, db, "ann", permission.RolePartner)
	cols := testutil.SeedBoard(t, db, owner, "To Do", "In Progress")
	repo := NewTicketRepository(db)

	var moved *model.Ticket
	for _, title := range []string{"a", "b", "c"} {
		ticket := &model.Ticket{ColumnID: cols[0].ID, Title: title, ReporterID: owner.ID}
		require.NoError(t, repo.Create(ticket, nil))
		if title == "a" {
			moved = ticket
		}
	}
	dest := &model.Ticket{ColumnID: cols[1].ID, Title: "existing", ReporterID: owner.ID}
	require.NoError(t, repo.Create(dest, nil))
	require.Equal(t, 0, dest.Position)

	got, err := repo.Move(moved.ID, cols[1].ID, nil)
	require.NoError(t, err)
	assert.Equal(t, cols[1].ID, got.ColumnID)
	assert.Equal(t, 1, got.Position) // max(0)+1
}

func TestMoveIntoEmptyColumnGetsZero(t *testing.T) {
	db := testutil.NewTestDB(t)
	owner := testutil.SeedUser(t, db, "ann", permission.RolePartner)
	cols := testutil.SeedBoard(t, db, owner, "To Do", "Done")
	repo := NewTicketRepository(db)

	ticket := &model.Ticket{ColumnID: cols[0].ID, Title: "a", ReporterID: owner.ID}
	require.NoError(t, repo.Create(ticket, nil))

	got, err := repo.Move(ticket.ID, cols[1].ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Position)
}

func TestMoveWithinColumnLeavesSiblings(t *testing.T) {
	db := testutil.NewTestDB(t)
	owner := testutil.SeedUser(t, db, "ann", permission.RolePartner)
	cols := testutil.SeedBoard(t, db, owner, "To Do")
	repo := NewTicketRepository(db)

	tickets := make([]*model.Ticket, 3)
	for i, title := range []string{"a", "b", "c"} {
		tickets[i] = &model.Ticket{ColumnID: cols[0].ID, Title: title, ReporterID: owner.ID}
		require.NoError(t, repo.Create(tickets[i], nil))
	}

	// Reorder "c" to the front slot; gap-based ordering, no sibling
	// renumbering.
	_, err := repo.Move(tickets[2].ID, cols[0].ID, intPtr(-1))
	require.NoError(t, err)

	var a, b, c model.Ticket
	require.NoError(t, db.First(&a, tickets[0].ID).Error)
	require.NoError(t, db.First(&b, tickets[1].ID).Error)
	require.NoError(t, db.First(&c, tickets[2].ID).Error)
	assert.Equal(t, 0, a.Position)
	assert.Equal(t, 1, b.Position)
	assert.Equal(t, -1, c.Position)
	assert.Equal(t, cols[0].ID, c.ColumnID)
}

func TestMoveExplicitPositionCrossColumn(t *testing.T) {
	db := testutil.NewTestDB(t)
	owner := testutil.SeedUser(t, db, "ann", permission.RolePartner)
	cols := testutil.SeedBoard(t, db, owner, "To Do", "Done")
	repo := NewTicketRepository(db)

	ticket := &model.Ticket{ColumnID: cols[0].ID, Title: "a", ReporterID: owner.ID}
	require.NoError(t, repo.Create(ticket, nil))

	got, err := repo.Move(ticket.ID, cols[1].ID, intPtr(5))
	require.NoError(t, err)
	assert.Equal(t, cols[1].ID, got.ColumnID)
	assert.Equal(t, 5, got.Position)
}

func TestPositionsStayDistinctAfterMoves(t *testing.T) {
	db := testutil.NewTestDB(t)
	owner := testutil.SeedUser(t, db, "ann", permission.RolePartner)
	cols := testutil.SeedBoard(t, db, owner, "To Do", "Done")
	repo := NewTicketRepository(db)

	ids := make([]uint, 0, 4)
	for _, title := range []string{"a", "b", "c", "d"} {
		ticket := &model.Ticket{ColumnID: cols[0].ID, Title: title, ReporterID: owner.ID}
		require.NoError(t, repo.Create(ticket, nil))
		ids = append(ids, ticket.ID)
	}
	for _, id := range ids {
		_, err := repo.Move(id, cols[1].ID, nil)
		require.NoError(t, err)
	}

	var moved []model.Ticket
	require.NoError(t, db.Where("column_id = ?", cols[1].ID).Order("position").Find(&moved).Error)
	require.Len(t, moved, 4)
	seen := map[int]bool{}
	for _, ticket := range moved {
		assert.False(t, seen[ticket.Position], "duplicate position %d", ticket.Position)
		seen[ticket.Position] = true
	}
}
