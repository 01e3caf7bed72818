package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"animal-zoo/internal/domain/zoo"
)

type ZooStoreSuite struct {
	suite.Suite
	store zoo.Store
	ctx   context.Context
}

func TestZooStoreSuite(t *testing.T) {
	suite.Run(t, new(ZooStoreSuite))
}

func (s *ZooStoreSuite) SetupTest() {
	s.store = NewZooStore()
	s.ctx = context.Background()
}

func (s *ZooStoreSuite) count(c zoo.Category) uint64 {
	var n uint64
	s.Require().NoError(s.store.View(s.ctx, func(tx zoo.Tx) error {
		var err error
		n, err = tx.Count(s.ctx, c)
		return err
	}))
	return n
}

func (s *ZooStoreSuite) TestCommitAppliesStagedWrites() {
	err := s.store.Update(s.ctx, func(tx zoo.Tx) error {
		if err := tx.SetCount(s.ctx, zoo.CategoryFish, 5); err != nil {
			return err
		}
		// La tx ve sus propias escrituras.
		n, err := tx.Count(s.ctx, zoo.CategoryFish)
		s.Equal(uint64(5), n)
		if err != nil {
			return err
		}
		return tx.PutLoan(s.ctx, zoo.Loan{ID: "l-1", Holder: "u-1", Category: zoo.CategoryFish, Age: 24, Gender: zoo.GenderMale})
	})
	s.Require().NoError(err)

	s.Equal(uint64(5), s.count(zoo.CategoryFish))
	s.Equal(uint64(0), s.count(zoo.CategoryCat))

	s.Require().NoError(s.store.View(s.ctx, func(tx zoo.Tx) error {
		l, ok, err := tx.Loan(s.ctx, "u-1")
		s.True(ok)
		s.Equal("l-1", l.ID)
		return err
	}))
}

func (s *ZooStoreSuite) TestErrorDiscardsAllWrites() {
	boom := errors.New("boom")
	err := s.store.Update(s.ctx, func(tx zoo.Tx) error {
		_ = tx.SetCount(s.ctx, zoo.CategoryDog, 3)
		_ = tx.PutLoan(s.ctx, zoo.Loan{ID: "l-1", Holder: "u-1", Category: zoo.CategoryDog})
		return boom
	})
	s.Require().ErrorIs(err, boom)

	s.Equal(uint64(0), s.count(zoo.CategoryDog))
	s.Require().NoError(s.store.View(s.ctx, func(tx zoo.Tx) error {
		_, ok, err := tx.Loan(s.ctx, "u-1")
		s.False(ok)
		return err
	}))
}

func (s *ZooStoreSuite) TestDeleteLoan() {
	s.Require().NoError(s.store.Update(s.ctx, func(tx zoo.Tx) error {
		return tx.PutLoan(s.ctx, zoo.Loan{ID: "l-1", Holder: "u-1", Category: zoo.CategoryFish})
	}))

	s.Run("deletes existing loan", func() {
		s.Require().NoError(s.store.Update(s.ctx, func(tx zoo.Tx) error {
			if err := tx.DeleteLoan(s.ctx, "u-1"); err != nil {
				return err
			}
			_, ok, err := tx.Loan(s.ctx, "u-1")
			s.False(ok)
			return err
		}))
	})

	s.Run("missing loan returns ErrNotFound", func() {
		err := s.store.Update(s.ctx, func(tx zoo.Tx) error {
			return tx.DeleteLoan(s.ctx, "u-1")
		})
		s.Require().ErrorIs(err, ErrNotFound)
	})
}

func (s *ZooStoreSuite) TestViewRejectsWrites() {
	err := s.store.View(s.ctx, func(tx zoo.Tx) error {
		return tx.SetCount(s.ctx, zoo.CategoryFish, 1)
	})
	s.Require().Error(err)
	s.Equal(uint64(0), s.count(zoo.CategoryFish))
}

func (s *ZooStoreSuite) TestCountsMergesStagedValues() {
	s.Require().NoError(s.store.Update(s.ctx, func(tx zoo.Tx) error {
		return tx.SetCount(s.ctx, zoo.CategoryFish, 2)
	}))

	s.Require().NoError(s.store.Update(s.ctx, func(tx zoo.Tx) error {
		if err := tx.SetCount(s.ctx, zoo.CategoryCat, 7); err != nil {
			return err
		}
		all, err := tx.Counts(s.ctx)
		s.Equal(map[zoo.Category]uint64{zoo.CategoryFish: 2, zoo.CategoryCat: 7}, all)
		return err
	}))
}

func (s *ZooStoreSuite) TestConcurrentIncrementsAreSerialized() {
	const workers = 50

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.store.Update(s.ctx, func(tx zoo.Tx) error {
				n, err := tx.Count(s.ctx, zoo.CategoryParrot)
				if err != nil {
					return err
				}
				return tx.SetCount(s.ctx, zoo.CategoryParrot, n+1)
			})
		}()
	}
	wg.Wait()

	s.Equal(uint64(workers), s.count(zoo.CategoryParrot))
}

func (s *ZooStoreSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	err := s.store.Update(ctx, func(tx zoo.Tx) error { return nil })
	s.Require().ErrorIs(err, context.Canceled)
}
