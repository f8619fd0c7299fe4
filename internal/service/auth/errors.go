package auth

import "errors"

var (
	// ErrEmailTaken возвращается при регистрации с уже занятым email
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль.
	// Одна ошибка для "нет пользователя" и "неверный пароль", чтобы
	// не раскрывать, какие email зарегистрированы.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
