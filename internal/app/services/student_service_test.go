package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolerp/student-service/internal/app/models"
	"github.com/schoolerp/student-service/internal/app/models/dto"
	"github.com/schoolerp/student-service/internal/app/repositories"
	"github.com/schoolerp/student-service/internal/db"
	"github.com/schoolerp/student-service/internal/pkg/apperrors"
)

type fakeStudentStore struct {
	students       map[int64]*models.Student
	nextID         int64
	existingNos    map[string]bool
	batchCalls     int
	batchIDs       []int64
	batchStatus    int64
	batchClass     int
	batchSection   int
	batchYear      string
	updateErr      error
	batchUpdateErr error
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{
		students:    map[int64]*models.Student{},
		nextID:      1,
		existingNos: map[string]bool{},
	}
}

func (f *fakeStudentStore) Create(_ context.Context, s *models.Student) (int64, error) {
	s.ID = f.nextID
	f.nextID++
	f.students[s.ID] = s
	f.existingNos[s.AdmissionNo] = true
	return s.ID, nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok || s.IsDeleted {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeStudentStore) ExistsByAdmissionNo(_ context.Context, no string) (bool, error) {
	return f.existingNos[no], nil
}

func (f *fakeStudentStore) List(_ context.Context, _ repositories.StudentFilter, _ uint64, _ int) ([]*models.Student, int64, error) {
	var out []*models.Student
	for _, s := range f.students {
		if !s.IsDeleted {
			out = append(out, s)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeStudentStore) Update(_ context.Context, s *models.Student) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.students[s.ID] = s
	return nil
}

func (f *fakeStudentStore) SoftDelete(_ context.Context, id int64) error {
	s, ok := f.students[id]
	if !ok || s.IsDeleted {
		return apperrors.ErrStudentNotFound
	}
	s.IsDeleted = true
	return nil
}

func (f *fakeStudentStore) FindAllByIDs(_ context.Context, ids []int64) ([]*models.Student, error) {
	var out []*models.Student
	for _, id := range ids {
		if s, ok := f.students[id]; ok && !s.IsDeleted {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStudentStore) UpdatePromotionBatch(_ context.Context, _ pgx.Tx, ids []int64, toClass, toSection int, year string, status int64) error {
	if f.batchUpdateErr != nil {
		return f.batchUpdateErr
	}
	f.batchCalls++
	f.batchIDs = ids
	f.batchClass = toClass
	f.batchSection = toSection
	f.batchYear = year
	f.batchStatus = status
	for _, id := range ids {
		s := f.students[id]
		s.ClassApplyingFor = toClass
		s.Section = toSection
		s.AcademicYear = year
		s.Status = status
	}
	return nil
}

type fakeDocumentStore struct {
	docs map[int64][]*models.StudentDocument
}

func (f *fakeDocumentStore) FindByStudentID(_ context.Context, id int64) ([]*models.StudentDocument, error) {
	return f.docs[id], nil
}

type fakeMasterStore struct {
	entries map[string]*models.CommonMaster
	calls   int
	err     error
}

func (f *fakeMasterStore) FindActiveByKeyAndValue(_ context.Context, key, data string) (*models.CommonMaster, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if m, ok := f.entries[key+"/"+data]; ok {
		return m, nil
	}
	return nil, apperrors.ErrStatusNotConfigured
}

type fakePromotionStore struct {
	rows      []*models.StudentPromotion
	createErr error
}

func (f *fakePromotionStore) CreateTx(_ context.Context, _ pgx.Tx, p *models.StudentPromotion) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	p.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, p)
	return p.ID, nil
}

func (f *fakePromotionStore) FindByStudentID(_ context.Context, studentID int64) ([]*models.StudentPromotion, error) {
	var rows []*models.StudentPromotion
	for _, p := range f.rows {
		if p.StudentID == studentID {
			rows = append(rows, p)
		}
	}
	return rows, nil
}

// fakeTxRunner invokes the function directly; a returned error stands in
// for a rollback.
type fakeTxRunner struct {
	rolledBack bool
}

func (f *fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	if err := fn(ctx, nil); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

func newStudentService(store *fakeStudentStore, master *fakeMasterStore, promo *fakePromotionStore, tx *fakeTxRunner) *StudentService {
	return NewStudentService(store, &fakeDocumentStore{docs: map[int64][]*models.StudentDocument{}}, master, promo, tx)
}

func seedStudent(store *fakeStudentStore, class, section int) *models.Student {
	s := &models.Student{
		FirstName:        "Asha",
		LastName:         "Verma",
		MobileNumber:     "9876543210",
		ClassApplyingFor: class,
		Section:          section,
		AcademicYear:     "2024-25",
	}
	store.Create(context.Background(), s)
	return s
}

func TestCreateStudent_GeneratesAdmissionNumber(t *testing.T) {
	store := newFakeStudentStore()
	svc := newStudentService(store, &fakeMasterStore{}, &fakePromotionStore{}, &fakeTxRunner{})

	resp, err := svc.CreateStudent(context.Background(), &dto.StudentRequest{
		FirstName: "Asha", LastName: "Verma", MobileNumber: "9876543210",
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^AD-\d{4}-\d{4}$`), resp.AdmissionNo)
}

func TestCreateStudent_DuplicateAdmissionNumber(t *testing.T) {
	store := newFakeStudentStore()
	store.existingNos["AD-2024-0001"] = true
	svc := newStudentService(store, &fakeMasterStore{}, &fakePromotionStore{}, &fakeTxRunner{})

	_, err := svc.CreateStudent(context.Background(), &dto.StudentRequest{
		FirstName: "Asha", LastName: "Verma", MobileNumber: "9876543210",
		AdmissionNo: "AD-2024-0001",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateAdmissionNo)

	ce := apperrors.AsCustomError(err)
	require.NotNil(t, ce)
	assert.Equal(t, apperrors.CodeDuplicateAdmissionNo, ce.Code)
}

func TestCreateStudent_SameAsCurrentAddress(t *testing.T) {
	store := newFakeStudentStore()
	svc := newStudentService(store, &fakeMasterStore{}, &fakePromotionStore{}, &fakeTxRunner{})

	resp, err := svc.CreateStudent(context.Background(), &dto.StudentRequest{
		FirstName: "Asha", LastName: "Verma", MobileNumber: "9876543210",
		CurrentAddress:       "12 Lake Road",
		PermanentAddress:     "ignored",
		SameAsCurrentAddress: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "12 Lake Road", resp.PermanentAddress)
}

func TestUpdateStudent_NotFound(t *testing.T) {
	svc := newStudentService(newFakeStudentStore(), &fakeMasterStore{}, &fakePromotionStore{}, &fakeTxRunner{})

	_, err := svc.UpdateStudent(context.Background(), 99, &dto.StudentRequest{
		FirstName: "A", LastName: "B", MobileNumber: "9",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestDeleteStudent_HidesFromLookups(t *testing.T) {
	store := newFakeStudentStore()
	s := seedStudent(store, 5, 1)
	svc := newStudentService(store, &fakeMasterStore{}, &fakePromotionStore{}, &fakeTxRunner{})

	require.NoError(t, svc.DeleteStudent(context.Background(), s.ID))

	_, err := svc.GetStudentByID(context.Background(), s.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	// Deleting again reports not found.
	assert.ErrorIs(t, svc.DeleteStudent(context.Background(), s.ID), apperrors.ErrStudentNotFound)
}

func TestPromoteStudents_EmptyCohortIsNotFound(t *testing.T) {
	svc := newStudentService(newFakeStudentStore(), &fakeMasterStore{}, &fakePromotionStore{}, &fakeTxRunner{})

	err := svc.PromoteStudents(context.Background(), &dto.PromoteStudentsRequest{
		FromClass: 5, FromSection: 1, ToClass: 6, ToSection: 1,
		AcademicYear: "2025-26", StudentIDs: []int64{101, 102},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestPromoteStudents_StatusResolvedOncePerRequest(t *testing.T) {
	store := newFakeStudentStore()
	a := seedStudent(store, 5, 1)
	b := seedStudent(store, 5, 1)
	c := seedStudent(store, 5, 1)

	master := &fakeMasterStore{entries: map[string]*models.CommonMaster{
		"STATUS/PROMOTED": {ID: 21, Key: "STATUS", Data: "PROMOTED", Active: true},
	}}
	promo := &fakePromotionStore{}
	tx := &fakeTxRunner{}
	svc := newStudentService(store, master, promo, tx)

	err := svc.PromoteStudents(context.Background(), &dto.PromoteStudentsRequest{
		FromClass: 5, FromSection: 1, ToClass: 6, ToSection: 2,
		AcademicYear: "2025-26",
		StudentIDs:   []int64{a.ID, b.ID, c.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, master.calls, "status lookup must run once per request, not per student")
	require.Len(t, promo.rows, 3)
	for _, row := range promo.rows {
		assert.Equal(t, 5, row.FromClass)
		assert.Equal(t, 6, row.ToClass)
		assert.Equal(t, int64(21), row.Status)
		assert.Equal(t, "2025-26", row.AcademicYear)
	}

	assert.Equal(t, 1, store.batchCalls)
	assert.Equal(t, int64(21), store.batchStatus)
	assert.Equal(t, 6, store.students[a.ID].ClassApplyingFor)
	assert.Equal(t, 2, store.students[a.ID].Section)
}

func TestPromoteStudents_MarkAsAlumniOverridesStatus(t *testing.T) {
	store := newFakeStudentStore()
	s := seedStudent(store, 10, 1)

	master := &fakeMasterStore{entries: map[string]*models.CommonMaster{
		"STATUS/ALUMNI": {ID: 33, Key: "STATUS", Data: "ALUMNI", Active: true},
	}}
	svc := newStudentService(store, master, &fakePromotionStore{}, &fakeTxRunner{})

	err := svc.PromoteStudents(context.Background(), &dto.PromoteStudentsRequest{
		FromClass: 10, FromSection: 1, ToClass: 10, ToSection: 1,
		AcademicYear: "2025-26",
		MarkAsAlumni: true,
		Status:       "PROMOTED", // ignored when markAsAlumni is set
		StudentIDs:   []int64{s.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(33), store.students[s.ID].Status)
}

func TestPromoteStudents_UnconfiguredStatus(t *testing.T) {
	store := newFakeStudentStore()
	s := seedStudent(store, 5, 1)
	svc := newStudentService(store, &fakeMasterStore{}, &fakePromotionStore{}, &fakeTxRunner{})

	err := svc.PromoteStudents(context.Background(), &dto.PromoteStudentsRequest{
		FromClass: 5, FromSection: 1, ToClass: 6, ToSection: 1,
		AcademicYear: "2025-26",
		MarkAsAlumni: true,
		StudentIDs:   []int64{s.ID},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStatusNotConfigured)

	ce := apperrors.AsCustomError(err)
	require.NotNil(t, ce)
	assert.Equal(t, "ALUMNI_STATUS_NOT_FOUND", ce.Code)
}

func TestPromoteStudents_StatusLookupDBFailure(t *testing.T) {
	store := newFakeStudentStore()
	s := seedStudent(store, 5, 1)

	dbErr := errors.New("connection refused")
	master := &fakeMasterStore{err: dbErr}
	promo := &fakePromotionStore{}
	svc := newStudentService(store, master, promo, &fakeTxRunner{})

	err := svc.PromoteStudents(context.Background(), &dto.PromoteStudentsRequest{
		FromClass: 5, FromSection: 1, ToClass: 6, ToSection: 1,
		AcademicYear: "2025-26",
		StudentIDs:   []int64{s.ID},
	})

	// a failing lookup is not a missing configuration; the raw error must
	// surface so it maps to an internal error, not a 400
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, apperrors.ErrStatusNotConfigured)
	assert.Nil(t, apperrors.AsCustomError(err))

	assert.Empty(t, promo.rows)
	assert.Equal(t, 0, store.batchCalls)
}

func TestPromoteStudents_AuditFailureRollsBack(t *testing.T) {
	store := newFakeStudentStore()
	s := seedStudent(store, 5, 1)

	master := &fakeMasterStore{entries: map[string]*models.CommonMaster{
		"STATUS/PROMOTED": {ID: 21, Key: "STATUS", Data: "PROMOTED", Active: true},
	}}
	promo := &fakePromotionStore{createErr: errors.New("insert failed")}
	tx := &fakeTxRunner{}
	svc := newStudentService(store, master, promo, tx)

	err := svc.PromoteStudents(context.Background(), &dto.PromoteStudentsRequest{
		FromClass: 5, FromSection: 1, ToClass: 6, ToSection: 1,
		AcademicYear: "2025-26",
		StudentIDs:   []int64{s.ID},
	})
	require.Error(t, err)
	assert.True(t, tx.rolledBack)
	assert.Equal(t, 0, store.batchCalls, "student update must not run after audit failure")
}

func TestGetStudentByID_AttachesDocuments(t *testing.T) {
	store := newFakeStudentStore()
	s := seedStudent(store, 5, 1)

	docs := &fakeDocumentStore{docs: map[int64][]*models.StudentDocument{
		s.ID: {{ID: 1, StudentID: s.ID, DocumentName: "birth.pdf", StorageURL: "https://b/x"}},
	}}
	svc := NewStudentService(store, docs, &fakeMasterStore{}, &fakePromotionStore{}, &fakeTxRunner{})

	resp, err := svc.GetStudentByID(context.Background(), s.ID)
	require.NoError(t, err)
	require.Len(t, resp.StudentDocuments, 1)
	assert.Equal(t, "birth.pdf", resp.StudentDocuments[0].DocumentName)
	assert.Equal(t, "https://b/x", resp.StudentDocuments[0].URL)
}

func TestGetPromotionHistory(t *testing.T) {
	store := newFakeStudentStore()
	s := seedStudent(store, 5, 1)
	other := seedStudent(store, 5, 1)

	master := &fakeMasterStore{entries: map[string]*models.CommonMaster{
		"STATUS/PROMOTED": {ID: 21, Key: "STATUS", Data: "PROMOTED", Active: true},
	}}
	promo := &fakePromotionStore{}
	svc := newStudentService(store, master, promo, &fakeTxRunner{})

	err := svc.PromoteStudents(context.Background(), &dto.PromoteStudentsRequest{
		FromClass: 5, FromSection: 1, ToClass: 6, ToSection: 1,
		AcademicYear: "2025-26",
		StudentIDs:   []int64{s.ID, other.ID},
	})
	require.NoError(t, err)

	history, err := svc.GetPromotionHistory(context.Background(), s.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, s.ID, history[0].StudentID)
	assert.Equal(t, 6, history[0].ToClass)

	_, err = svc.GetPromotionHistory(context.Background(), 9999)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
