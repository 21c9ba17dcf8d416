package postgres

import (
	"database/sql/driver"
	"strconv"
	"strings"

	"vetclinic/internal/record"

	"github.com/shopspring/decimal"
)

// column describe una columna actualizable. Solo se construyen desde las
// tablas estáticas de cada repo: el nombre nunca sale del request.
type column struct {
	name string
	cast string
}

type assignment struct {
	col   column
	value any
}

// buildUpdate arma
//
//	UPDATE <table> SET c1 = $1, c2 = $2::jsonb WHERE id = $3 RETURNING <returning>
//
// con un placeholder por asignación y el id como último argumento.
func buildUpdate(table string, id int64, sets []assignment, returning string) (string, []any) {
	sb := strings.Builder{}
	sb.WriteString("UPDATE ")
	sb.WriteString(table)
	sb.WriteString(" SET ")

	args := make([]any, 0, len(sets)+1)
	argN := 1
	for i, a := range sets {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(a.col.name)
		sb.WriteString(" = $")
		sb.WriteString(strconv.Itoa(argN))
		sb.WriteString(a.col.cast)
		args = append(args, a.value)
		argN++
	}

	sb.WriteString(" WHERE id = $")
	sb.WriteString(strconv.Itoa(argN))
	args = append(args, id)

	sb.WriteString(" RETURNING ")
	sb.WriteString(returning)

	return sb.String(), args
}

// Los argumentos se pasan como tipos básicos (string, time.Time, nil) para
// que el driver no tenga que adivinar cómo codificar tipos propios.

func jsonArg(doc driver.Valuer) (any, error) {
	return doc.Value()
}

func dateArg(d *record.Date) any {
	if d == nil {
		return nil
	}
	return d.Time
}

func decimalArg(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func stringArg(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
