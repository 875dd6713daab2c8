package lexicon

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/conlang-backend/internal/domain"
)

var _ lexiconRepo = &lexiconRepoMock{}

type lexiconRepoMock struct {
	CreatePartOfSpeechFunc func(ctx context.Context, p domain.PartOfSpeech) error
	GetPartOfSpeechFunc    func(ctx context.Context, langID uuid.UUID, id int64) (domain.PartOfSpeech, error)
	ListPartsOfSpeechFunc  func(ctx context.Context, langID uuid.UUID) ([]domain.PartOfSpeech, error)
	UpdatePartOfSpeechFunc func(ctx context.Context, p domain.PartOfSpeech) error
	DeletePartOfSpeechFunc func(ctx context.Context, langID uuid.UUID, id int64) error
	CreateClassFunc        func(ctx context.Context, c domain.WordClass) error
	AddClassValueFunc      func(ctx context.Context, langID uuid.UUID, v domain.WordClassValue) error
	ListClassesFunc        func(ctx context.Context, langID uuid.UUID) ([]domain.WordClass, error)
	DeleteClassFunc        func(ctx context.Context, langID uuid.UUID, id int64) error
	DeleteClassValueFunc   func(ctx context.Context, langID uuid.UUID, valueID int64) error
	CreateWordFunc         func(ctx context.Context, w domain.Word) error
	GetWordFunc            func(ctx context.Context, langID uuid.UUID, id int64) (domain.Word, error)
	ListWordsFunc          func(ctx context.Context, langID uuid.UUID, f domain.WordFilter) ([]domain.Word, error)
	UpdateWordFunc         func(ctx context.Context, w domain.Word) error
	DeleteWordFunc         func(ctx context.Context, langID uuid.UUID, id int64) error
	ClearWordTypeFunc      func(ctx context.Context, langID uuid.UUID, typeID int64) (int64, error)
	SetWordClassFunc       func(ctx context.Context, langID uuid.UUID, wordID int64, classID int64, valueID int64) error
	RemoveWordClassFunc    func(ctx context.Context, langID uuid.UUID, wordID int64, classID int64) error

	calls struct {
		CreatePartOfSpeech []struct {
			Ctx context.Context
			P   domain.PartOfSpeech
		}
		GetPartOfSpeech []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Id     int64
		}
		ListPartsOfSpeech []struct {
			Ctx    context.Context
			LangID uuid.UUID
		}
		UpdatePartOfSpeech []struct {
			Ctx context.Context
			P   domain.PartOfSpeech
		}
		DeletePartOfSpeech []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Id     int64
		}
		CreateClass []struct {
			Ctx context.Context
			C   domain.WordClass
		}
		AddClassValue []struct {
			Ctx    context.Context
			LangID uuid.UUID
			V      domain.WordClassValue
		}
		ListClasses []struct {
			Ctx    context.Context
			LangID uuid.UUID
		}
		DeleteClass []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Id     int64
		}
		DeleteClassValue []struct {
			Ctx     context.Context
			LangID  uuid.UUID
			ValueID int64
		}
		CreateWord []struct {
			Ctx context.Context
			W   domain.Word
		}
		GetWord []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Id     int64
		}
		ListWords []struct {
			Ctx    context.Context
			LangID uuid.UUID
			F      domain.WordFilter
		}
		UpdateWord []struct {
			Ctx context.Context
			W   domain.Word
		}
		DeleteWord []struct {
			Ctx    context.Context
			LangID uuid.UUID
			Id     int64
		}
		ClearWordType []struct {
			Ctx    context.Context
			LangID uuid.UUID
			TypeID int64
		}
		SetWordClass []struct {
			Ctx     context.Context
			LangID  uuid.UUID
			WordID  int64
			ClassID int64
			ValueID int64
		}
		RemoveWordClass []struct {
			Ctx     context.Context
			LangID  uuid.UUID
			WordID  int64
			ClassID int64
		}
	}
	lockCreatePartOfSpeech sync.RWMutex
	lockGetPartOfSpeech    sync.RWMutex
	lockListPartsOfSpeech  sync.RWMutex
	lockUpdatePartOfSpeech sync.RWMutex
	lockDeletePartOfSpeech sync.RWMutex
	lockCreateClass        sync.RWMutex
	lockAddClassValue      sync.RWMutex
	lockListClasses        sync.RWMutex
	lockDeleteClass        sync.RWMutex
	lockDeleteClassValue   sync.RWMutex
	lockCreateWord         sync.RWMutex
	lockGetWord            sync.RWMutex
	lockListWords          sync.RWMutex
	lockUpdateWord         sync.RWMutex
	lockDeleteWord         sync.RWMutex
	lockClearWordType      sync.RWMutex
	lockSetWordClass       sync.RWMutex
	lockRemoveWordClass    sync.RWMutex
}

func (mock *lexiconRepoMock) CreatePartOfSpeech(ctx context.Context, p domain.PartOfSpeech) error {
	if mock.CreatePartOfSpeechFunc == nil {
		panic("lexiconRepoMock.CreatePartOfSpeechFunc: method is nil but lexiconRepo.CreatePartOfSpeech was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.PartOfSpeech
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreatePartOfSpeech.Lock()
	mock.calls.CreatePartOfSpeech = append(mock.calls.CreatePartOfSpeech, callInfo)
	mock.lockCreatePartOfSpeech.Unlock()
	return mock.CreatePartOfSpeechFunc(ctx, p)
}

func (mock *lexiconRepoMock) CreatePartOfSpeechCalls() []struct {
	Ctx context.Context
	P   domain.PartOfSpeech
} {
	mock.lockCreatePartOfSpeech.RLock()
	calls := mock.calls.CreatePartOfSpeech
	mock.lockCreatePartOfSpeech.RUnlock()
	return calls
}

func (mock *lexiconRepoMock) GetPartOfSpeech(ctx context.Context, langID uuid.UUID, id int64) (domain.PartOfSpeech, error) {
	if mock.GetPartOfSpeechFunc == nil {
		panic("lexiconRepoMock.GetPartOfSpeechFunc: method is nil but lexiconRepo.GetPartOfSpeech was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		Id     int64
	}{
		Ctx:    ctx,
		LangID: langID,
		Id:     id,
	}
	mock.lockGetPartOfSpeech.Lock()
	mock.calls.GetPartOfSpeech = append(mock.calls.GetPartOfSpeech, callInfo)
	mock.lockGetPartOfSpeech.Unlock()
	return mock.GetPartOfSpeechFunc(ctx, langID, id)
}

func (mock *lexiconRepoMock) GetPartOfSpeechCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Id     int64
} {
	mock.lockGetPartOfSpeech.RLock()
	calls := mock.calls.GetPartOfSpeech
	mock.lockGetPartOfSpeech.RUnlock()
	return calls
}

func (mock *lexiconRepoMock) ListPartsOfSpeech(ctx context.Context, langID uuid.UUID) ([]domain.PartOfSpeech, error) {
	if mock.ListPartsOfSpeechFunc == nil {
		panic("lexiconRepoMock.ListPartsOfSpeechFunc: method is nil but lexiconRepo.ListPartsOfSpeech was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
	}{
		Ctx:    ctx,
		LangID: langID,
	}
	mock.lockListPartsOfSpeech.Lock()
	mock.calls.ListPartsOfSpeech = append(mock.calls.ListPartsOfSpeech, callInfo)
	mock.lockListPartsOfSpeech.Unlock()
	return mock.ListPartsOfSpeechFunc(ctx, langID)
}

func (mock *lexiconRepoMock) ListPartsOfSpeechCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
} {
	mock.lockListPartsOfSpeech.RLock()
	calls := mock.calls.ListPartsOfSpeech
	mock.lockListPartsOfSpeech.RUnlock()
	return calls
}

func (mock *lexiconRepoMock) UpdatePartOfSpeech(ctx context.Context, p domain.PartOfSpeech) error {
	if mock.UpdatePartOfSpeechFunc == nil {
		panic("lexiconRepoMock.UpdatePartOfSpeechFunc: method is nil but lexiconRepo.UpdatePartOfSpeech was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.PartOfSpeech
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockUpdatePartOfSpeech.Lock()
	mock.calls.UpdatePartOfSpeech = append(mock.calls.UpdatePartOfSpeech, callInfo)
	mock.lockUpdatePartOfSpeech.Unlock()
	return mock.UpdatePartOfSpeechFunc(ctx, p)
}

func (mock *lexiconRepoMock) UpdatePartOfSpeechCalls() []struct {
	Ctx context.Context
	P   domain.PartOfSpeech
} {
	mock.lockUpdatePartOfSpeech.RLock()
	calls := mock.calls.UpdatePartOfSpeech
	mock.lockUpdatePartOfSpeech.RUnlock()
	return calls
}

func (mock *lexiconRepoMock) DeletePartOfSpeech(ctx context.Context, langID uuid.UUID, id int64) error {
	if mock.DeletePartOfSpeechFunc == nil {
		panic("lexiconRepoMock.DeletePartOfSpeechFunc: method is nil but lexiconRepo.DeletePartOfSpeech was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		Id     int64
	}{
		Ctx:    ctx,
		LangID: langID,
		Id:     id,
	}
	mock.lockDeletePartOfSpeech.Lock()
	mock.calls.DeletePartOfSpeech = append(mock.calls.DeletePartOfSpeech, callInfo)
	mock.lockDeletePartOfSpeech.Unlock()
	return mock.DeletePartOfSpeechFunc(ctx, langID, id)
}

func (mock *lexiconRepoMock) DeletePartOfSpeechCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Id     int64
} {
	mock.lockDeletePartOfSpeech.RLock()
	calls := mock.calls.DeletePartOfSpeech
	mock.lockDeletePartOfSpeech.RUnlock()
	return calls
}

func (mock *lexiconRepoMock) CreateClass(ctx context.Context, c domain.WordClass) error {
	if mock.CreateClassFunc == nil {
		panic("lexiconRepoMock.CreateClassFunc: method is nil but lexiconRepo.CreateClass was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.WordClass
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreateClass.Lock()
	mock.calls.CreateClass = append(mock.calls.CreateClass, callInfo)
	mock.lockCreateClass.Unlock()
	return mock.CreateClassFunc(ctx, c)
}

func (mock *lexiconRepoMock) CreateClassCalls() []struct {
	Ctx context.Context
	C   domain.WordClass
} {
	mock.lockCreateClass.RLock()
	calls := mock.calls.CreateClass
	mock.lockCreateClass.RUnlock()
	return calls
}

func (mock *lexiconRepoMock) AddClassValue(ctx context.Context, langID uuid.UUID, v domain.WordClassValue) error {
	if mock.AddClassValueFunc == nil {
		panic("lexiconRepoMock.AddClassValueFunc: method is nil but lexiconRepo.AddClassValue was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		V      domain.WordClassValue
	}{
		Ctx:    ctx,
		LangID: langID,
		V:      v,
	}
	mock.lockAddClassValue.Lock()
	mock.calls.AddClassValue = append(mock.calls.AddClassValue, callInfo)
	mock.lockAddClassValue.Unlock()
	return mock.AddClassValueFunc(ctx, langID, v)
}

func (mock *lexiconRepoMock) AddClassValueCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	V      domain.WordClassValue
} {
	mock.lockAddClassValue.RLock()
	calls := mock.calls.AddClassValue
	mock.lockAddClassValue.RUnlock()
	return calls
}

func (mock *lexiconRepoMock) ListClasses(ctx context.Context, langID uuid.UUID) ([]domain.WordClass, error) {
	if mock.ListClassesFunc == nil {
		panic("lexiconRepoMock.ListClassesFunc: method is nil but lexiconRepo.ListClasses was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
	}{
		Ctx:    ctx,
		LangID: langID,
	}
	mock.lockListClasses.Lock()
	mock.calls.ListClasses = append(mock.calls.ListClasses, callInfo)
	mock.lockListClasses.Unlock()
	return mock.ListClassesFunc(ctx, langID)
}

func (mock *lexiconRepoMock) ListClassesCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
} {
	mock.lockListClasses.RLock()
	calls := mock.calls.ListClasses
	mock.lockListClasses.RUnlock()
	return calls
}

func (mock *lexiconRepoMock) DeleteClass(ctx context.Context, langID uuid.UUID, id int64) error {
	if mock.DeleteClassFunc == nil {
		panic("lexiconRepoMock.DeleteClassFunc: method is nil but lexiconRepo.DeleteClass was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		Id     int64
	}{
		Ctx:    ctx,
		LangID: langID,
		Id:     id,
	}
	mock.lockDeleteClass.Lock()
	mock.calls.DeleteClass = append(mock.calls.DeleteClass, callInfo)
	mock.lockDeleteClass.Unlock()
	return mock.DeleteClassFunc(ctx, langID, id)
}

func (mock *lexiconRepoMock) DeleteClassCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Id     int64
} {
	mock.lockDeleteClass.RLock()
	calls := mock.calls.DeleteClass
	mock.lockDeleteClass.RUnlock()
	return calls
}

func (mock *lexiconRepoMock) DeleteClassValue(ctx context.Context, langID uuid.UUID, valueID int64) error {
	if mock.DeleteClassValueFunc == nil {
		panic("lexiconRepoMock.DeleteClassValueFunc: method is nil but lexiconRepo.DeleteClassValue was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		LangID  uuid.UUID
		ValueID int64
	}{
		Ctx:     ctx,
		LangID:  langID,
		ValueID: valueID,
	}
	mock.lockDeleteClassValue.Lock()
	mock.calls.DeleteClassValue = append(mock.calls.DeleteClassValue, callInfo)
	mock.lockDeleteClassValue.Unlock()
	return mock.DeleteClassValueFunc(ctx, langID, valueID)
}

func (mock *lexiconRepoMock) DeleteClassValueCalls() []struct {
	Ctx     context.Context
	LangID  uuid.UUID
	ValueID int64
} {
	mock.lockDeleteClassValue.RLock()
	calls := mock.calls.DeleteClassValue
	mock.lockDeleteClassValue.RUnlock()
	return calls
}

func (mock *lexiconRepoMock) CreateWord(ctx context.Context, w domain.Word) error {
	if mock.CreateWordFunc == nil {
		panic("lexiconRepoMock.CreateWordFunc: method is nil but lexiconRepo.CreateWord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   domain.Word
	}{
		Ctx: ctx,
		W:   w,
	}
	mock.lockCreateWord.Lock()
	mock.calls.CreateWord = append(mock.calls.CreateWord, callInfo)
	mock.lockCreateWord.Unlock()
	return mock.CreateWordFunc(ctx, w)
}

func (mock *lexiconRepoMock) CreateWordCalls() []struct {
	Ctx context.Context
	W   domain.Word
} {
	mock.lockCreateWord.RLock()
	calls := mock.calls.CreateWord
	mock.lockCreateWord.RUnlock()
	return calls
}

func (mock *lexiconRepoMock) GetWord(ctx context.Context, langID uuid.UUID, id int64) (domain.Word, error) {
	if mock.GetWordFunc == nil {
		panic("lexiconRepoMock.GetWordFunc: method is nil but lexiconRepo.GetWord was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		Id     int64
	}{
		Ctx:    ctx,
		LangID: langID,
		Id:     id,
	}
	mock.lockGetWord.Lock()
	mock.calls.GetWord = append(mock.calls.GetWord, callInfo)
	mock.lockGetWord.Unlock()
	return mock.GetWordFunc(ctx, langID, id)
}

func (mock *lexiconRepoMock) GetWordCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Id     int64
} {
	mock.lockGetWord.RLock()
	calls := mock.calls.GetWord
	mock.lockGetWord.RUnlock()
	return calls
}

func (mock *lexiconRepoMock) ListWords(ctx context.Context, langID uuid.UUID, f domain.WordFilter) ([]domain.Word, error) {
	if mock.ListWordsFunc == nil {
		panic("lexiconRepoMock.ListWordsFunc: method is nil but lexiconRepo.ListWords was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		F      domain.WordFilter
	}{
		Ctx:    ctx,
		LangID: langID,
		F:      f,
	}
	mock.lockListWords.Lock()
	mock.calls.ListWords = append(mock.calls.ListWords, callInfo)
	mock.lockListWords.Unlock()
	return mock.ListWordsFunc(ctx, langID, f)
}

func (mock *lexiconRepoMock) ListWordsCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	F      domain.WordFilter
} {
	mock.lockListWords.RLock()
	calls := mock.calls.ListWords
	mock.lockListWords.RUnlock()
	return calls
}

func (mock *lexiconRepoMock) UpdateWord(ctx context.Context, w domain.Word) error {
	if mock.UpdateWordFunc == nil {
		panic("lexiconRepoMock.UpdateWordFunc: method is nil but lexiconRepo.UpdateWord was just called")
	}
	callInfo := struct {
		Ctx context.Context
		W   domain.Word
	}{
		Ctx: ctx,
		W:   w,
	}
	mock.lockUpdateWord.Lock()
	mock.calls.UpdateWord = append(mock.calls.UpdateWord, callInfo)
	mock.lockUpdateWord.Unlock()
	return mock.UpdateWordFunc(ctx, w)
}

func (mock *lexiconRepoMock) UpdateWordCalls() []struct {
	Ctx context.Context
	W   domain.Word
} {
	mock.lockUpdateWord.RLock()
	calls := mock.calls.UpdateWord
	mock.lockUpdateWord.RUnlock()
	return calls
}

func (mock *lexiconRepoMock) DeleteWord(ctx context.Context, langID uuid.UUID, id int64) error {
	if mock.DeleteWordFunc == nil {
		panic("lexiconRepoMock.DeleteWordFunc: method is nil but lexiconRepo.DeleteWord was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		Id     int64
	}{
		Ctx:    ctx,
		LangID: langID,
		Id:     id,
	}
	mock.lockDeleteWord.Lock()
	mock.calls.DeleteWord = append(mock.calls.DeleteWord, callInfo)
	mock.lockDeleteWord.Unlock()
	return mock.DeleteWordFunc(ctx, langID, id)
}

func (mock *lexiconRepoMock) DeleteWordCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	Id     int64
} {
	mock.lockDeleteWord.RLock()
	calls := mock.calls.DeleteWord
	mock.lockDeleteWord.RUnlock()
	return calls
}

func (mock *lexiconRepoMock) ClearWordType(ctx context.Context, langID uuid.UUID, typeID int64) (int64, error) {
	if mock.ClearWordTypeFunc == nil {
		panic("lexiconRepoMock.ClearWordTypeFunc: method is nil but lexiconRepo.ClearWordType was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LangID uuid.UUID
		TypeID int64
	}{
		Ctx:    ctx,
		LangID: langID,
		TypeID: typeID,
	}
	mock.lockClearWordType.Lock()
	mock.calls.ClearWordType = append(mock.calls.ClearWordType, callInfo)
	mock.lockClearWordType.Unlock()
	return mock.ClearWordTypeFunc(ctx, langID, typeID)
}

func (mock *lexiconRepoMock) ClearWordTypeCalls() []struct {
	Ctx    context.Context
	LangID uuid.UUID
	TypeID int64
} {
	mock.lockClearWordType.RLock()
	calls := mock.calls.ClearWordType
	mock.lockClearWordType.RUnlock()
	return calls
}

func (mock *lexiconRepoMock) SetWordClass(ctx context.Context, langID uuid.UUID, wordID int64, classID int64, valueID int64) error {
	if mock.SetWordClassFunc == nil {
		panic("lexiconRepoMock.SetWordClassFunc: method is nil but lexiconRepo.SetWordClass was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		LangID  uuid.UUID
		WordID  int64
		ClassID int64
		ValueID int64
	}{
		Ctx:     ctx,
		LangID:  langID,
		WordID:  wordID,
		ClassID: classID,
		ValueID: valueID,
	}
	mock.lockSetWordClass.Lock()
	mock.calls.SetWordClass = append(mock.calls.SetWordClass, callInfo)
	mock.lockSetWordClass.Unlock()
	return mock.SetWordClassFunc(ctx, langID, wordID, classID, valueID)
}

func (mock *lexiconRepoMock) SetWordClassCalls() []struct {
	Ctx     context.Context
	LangID  uuid.UUID
	WordID  int64
	ClassID int64
	ValueID int64
} {
	mock.lockSetWordClass.RLock()
	calls := mock.calls.SetWordClass
	mock.lockSetWordClass.RUnlock()
	return calls
}

func (mock *lexiconRepoMock) RemoveWordClass(ctx context.Context, langID uuid.UUID, wordID int64, classID int64) error {
	if mock.RemoveWordClassFunc == nil {
		panic("lexiconRepoMock.RemoveWordClassFunc: method is nil but lexiconRepo.RemoveWordClass was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		LangID  uuid.UUID
		WordID  int64
		ClassID int64
	}{
		Ctx:     ctx,
		LangID:  langID,
		WordID:  wordID,
		ClassID: classID,
	}
	mock.lockRemoveWordClass.Lock()
	mock.calls.RemoveWordClass = append(mock.calls.RemoveWordClass, callInfo)
	mock.lockRemoveWordClass.Unlock()
	return mock.RemoveWordClassFunc(ctx, langID, wordID, classID)
}

func (mock *lexiconRepoMock) RemoveWordClassCalls() []struct {
	Ctx     context.Context
	LangID  uuid.UUID
	WordID  int64
	ClassID int64
} {
	mock.lockRemoveWordClass.RLock()
	calls := mock.calls.RemoveWordClass
	mock.lockRemoveWordClass.RUnlock()
	return calls
}
